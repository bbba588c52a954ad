package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"upi_escrow/internal/adapter/http/middleware"
	"upi_escrow/internal/domain/entities"
	"upi_escrow/internal/infrastructure/auth"
	"upi_escrow/internal/infrastructure/config"
	"upi_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type escrowServer struct {
	t      *testing.T
	router *gin.Engine
	oracle *auth.JWTOracle
}

func newEscrowServer(t *testing.T) *escrowServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{PaymentStore: config.StoreBolt, BoltPath: filepath.Join(t.TempDir(), "escrow.db")}
	store, closeStore, err := openPaymentStore(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(closeStore)

	oracle, err := auth.NewJWTOracle("routes-test-secret")
	require.NoError(t, err)

	ledger := usecase.NewEscrowLedgerUseCase(store, oracle, true)
	return &escrowServer{t: t, router: NewRouter(ledger), oracle: oracle}
}

func (s *escrowServer) token(principal string) string {
	proof, err := s.oracle.Issue(entities.Principal(principal), time.Minute)
	require.NoError(s.t, err)
	return string(proof)
}

func (s *escrowServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *escrowServer) status(id string) string {
	w := s.do(http.MethodGet, "/v1/payments/"+id, "", "")
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Status string `json:"status"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Status
}

func TestPing(t *testing.T) {
	s := newEscrowServer(t)

	w := s.do(http.MethodGet, "/v1/ping", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	require.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestEscrowFlow(t *testing.T) {
	s := newEscrowServer(t)
	alice, bob, carol := s.token("alice"), s.token("bob"), s.token("carol")

	// unknown id
	w := s.do(http.MethodGet, "/v1/payments/1", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	// creating for alice needs alice's token
	w = s.do(http.MethodPost, "/v1/payments", carol, `{"id":1,"user":"alice","merchant":"bob","amount":"500"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	w = s.do(http.MethodGet, "/v1/payments/1", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/v1/payments", alice, `{"id":1,"user":"alice","merchant":"bob","amount":"500"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.JSONEq(t, `{"success":true,"payment":{"id":1,"user":"alice","merchant":"bob","amount":"500","status":"PENDING"}}`, w.Body.String())

	// carol holds a valid proof but is not the merchant
	w = s.do(http.MethodPost, "/v1/payments/1/confirm", carol, `{"merchant":"carol"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "PENDING", s.status("1"))

	// alice's token cannot confirm as bob
	w = s.do(http.MethodPost, "/v1/payments/1/confirm", alice, `{"merchant":"bob"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/v1/payments/1/confirm", bob, `{"merchant":"bob"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "COMPLETE", s.status("1"))

	// terminal payments stay terminal
	w = s.do(http.MethodPost, "/v1/payments/1/cancel", alice, `{"user":"alice"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "COMPLETE", s.status("1"))

	// confirm on a missing id
	w = s.do(http.MethodPost, "/v1/payments/2/confirm", bob, `{"merchant":"bob"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestEscrowCancelFlow(t *testing.T) {
	s := newEscrowServer(t)
	alice, bob := s.token("alice"), s.token("bob")

	w := s.do(http.MethodPost, "/v1/payments", alice, `{"id":"18446744073709551615","user":"alice","merchant":"bob","amount":"-170141183460469231731687303715884105728"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// the merchant cannot cancel
	w = s.do(http.MethodPost, "/v1/payments/18446744073709551615/cancel", bob, `{"user":"bob"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/v1/payments/18446744073709551615/cancel", alice, `{"user":"alice"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/v1/payments/18446744073709551615", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":18446744073709551615,"user":"alice","merchant":"bob","amount":"-170141183460469231731687303715884105728","status":"CANCELED"}`, w.Body.String())
}

func TestOpenPaymentStore_Unknown(t *testing.T) {
	_, closeStore, err := openPaymentStore(context.Background(), &config.Config{PaymentStore: "redis"})
	require.True(t, errors.Is(err, config.ErrUnknownStore))
	closeStore()
}
