package handler

import (
	"net/http"

	"github.com/eaglebank/account-grpc/internal/accountpb"
	"github.com/eaglebank/account-grpc/internal/logger"
	"github.com/gin-gonic/gin"
	"google.golang.org/protobuf/proto"
)

// AccountHandler exposes the account service calls as JSON over HTTP.
type AccountHandler struct {
	accounts accountpb.AccountServiceServer
}

func NewAccountHandler(accounts accountpb.AccountServiceServer) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register mounts the account routes and /health on router.
func (h *AccountHandler) Register(router gin.IRouter) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		v1.GET("/accounts", h.ListAccounts)
		v1.POST("/accounts", h.SaveAccount)
		v1.GET("/accounts/:id", h.GetAccount)
		v1.GET("/stats/balance", h.GetTotalBalance)
	}
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	resp, err := h.accounts.ListAccounts(c.Request.Context(), &accountpb.ListAccountsRequest{})
	if err != nil {
		logger.Error("list accounts request failed", err, nil)
		RespondWithError(c, http.StatusInternalServerError, "Failed to list accounts")
		return
	}
	respondWithMessage(c, http.StatusOK, resp)
}

// GetAccount answers 200 with a zero-valued account for unknown ids, like the
// RPC call it mirrors.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.accounts.GetAccountById(c.Request.Context(), &accountpb.GetAccountByIdRequest{Id: id})
	if err != nil {
		logger.Error("get account request failed", err, logger.Fields{"id": id})
		RespondWithError(c, http.StatusInternalServerError, "Failed to get account")
		return
	}
	respondWithMessage(c, http.StatusOK, resp)
}

func (h *AccountHandler) GetTotalBalance(c *gin.Context) {
	resp, err := h.accounts.GetTotalBalance(c.Request.Context(), &accountpb.GetTotalBalanceRequest{})
	if err != nil {
		logger.Error("total balance request failed", err, nil)
		RespondWithError(c, http.StatusInternalServerError, "Failed to compute total balance")
		return
	}
	respondWithMessage(c, http.StatusOK, resp)
}

// SaveAccount takes the bare AccountInput as the request body. The type may
// be given by name or number; unknown names are rejected.
func (h *AccountHandler) SaveAccount(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	input := &accountpb.AccountInput{}
	if err := accountpb.UnmarshalJSON(body, input); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.accounts.SaveAccount(c.Request.Context(), &accountpb.SaveAccountRequest{Account: input})
	if err != nil {
		logger.Error("save account request failed", err, nil)
		RespondWithError(c, http.StatusInternalServerError, "Failed to save account")
		return
	}
	respondWithMessage(c, http.StatusOK, resp)
}

// respondWithMessage writes m in its protojson form so enum names, camelCase
// field names and non-finite balances match the gRPC JSON codec.
func respondWithMessage(c *gin.Context, code int, m proto.Message) {
	body, err := accountpb.MarshalJSON(m)
	if err != nil {
		logger.Error("failed to encode response", err, logger.Fields{"path": c.FullPath()})
		RespondWithError(c, http.StatusInternalServerError, "Failed to encode response")
		return
	}
	c.Data(code, "application/json; charset=utf-8", body)
}
