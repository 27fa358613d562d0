package handler

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/repository"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminSvcStub 只记录 PageMessages 收到的查询条件
type adminSvcStub struct {
	lastQuery repository.PageQuery
}

func (s *adminSvcStub) Login(_ context.Context, _ *dto.CredentialDTO) (*dto.TokenDTO, error) {
	return nil, nil
}
func (s *adminSvcStub) Logout(_ context.Context, _ string) error                  { return nil }
func (s *adminSvcStub) GetAdminProfile(_ context.Context, _ uint64) (*dto.AdminDTO, error) {
	return nil, nil
}
func (s *adminSvcStub) CreateAdmin(_ context.Context, _ *dto.AdminBaseDTO) error  { return nil }
func (s *adminSvcStub) UpdateAdmin(_ context.Context, _ uint64, _ *dto.AdminBaseDTO) error {
	return nil
}
func (s *adminSvcStub) DeleteAdmin(_ context.Context, _ uint64) error { return nil }
func (s *adminSvcStub) PageAdmins(_ context.Context, _ repository.PageQuery) (*repository.Page[*dto.AdminDTO], error) {
	return repository.EmptyPage[*dto.AdminDTO](1, 10), nil
}
func (s *adminSvcStub) Broadcast(_ context.Context, _ uint64, _ *dto.BroadcastDTO) error {
	return nil
}
func (s *adminSvcStub) PageMessages(_ context.Context, query repository.PageQuery) (*repository.Page[*dto.AdminMessageDTO], error) {
	s.lastQuery = query
	return repository.EmptyPage[*dto.AdminMessageDTO](query.Page, query.Limit), nil
}
func (s *adminSvcStub) DeleteMessages(_ context.Context, _ []uint64) error { return nil }

func TestPageMessages_TypeFilterIsWireString(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &adminSvcStub{}
	h := NewAdminHandler(stub, nil)

	r := gin.New()
	r.GET("/admin/messages", h.PageMessages)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/messages?type=dynamic_post_like&sender_id=7", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dynamic_post_like", stub.lastQuery.Filters["type"])
	assert.Equal(t, uint64(7), stub.lastQuery.Filters["sender_id"])
}

func TestPageMessages_NoTypeQueryOmitsFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &adminSvcStub{}
	h := NewAdminHandler(stub, nil)

	r := gin.New()
	r.GET("/admin/messages", h.PageMessages)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/messages", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	_, ok := stub.lastQuery.Filters["type"]
	assert.False(t, ok)
}
