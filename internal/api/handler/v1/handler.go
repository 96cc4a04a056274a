package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/franchise-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/franchise-api/internal/api/middleware"
	"github.com/vietanh2810/franchise-api/internal/domain"
)

type validatable interface {
	Validate() error
}

// bind decodes the JSON body into req and validates it. It renders the error
// and returns false when either step fails.
func bind(ctx *gin.Context, req validatable) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		response.RenderErr(ctx, response.ErrInvalidBody(err))
		return false
	}

	if err := req.Validate(); err != nil {
		response.Render(ctx, err)
		return false
	}

	return true
}

// claimsOf returns the claims stored by the authentication middleware.
func claimsOf(ctx *gin.Context) (domain.Claims, bool) {
	claims, ok := middleware.ClaimsFrom(ctx)
	if !ok {
		response.Render(ctx, middleware.ErrAuthRequired)
		return domain.Claims{}, false
	}

	return claims, true
}

// idParam returns the :id path segment once it is a valid UUID.
func idParam(ctx *gin.Context) (string, bool) {
	param := request.IDParam{ID: ctx.Param("id")}
	if err := param.Validate(); err != nil {
		response.Render(ctx, err)
		return "", false
	}

	return param.ID, true
}

// franchiseQuery returns the optional franchise_id query parameter.
func franchiseQuery(ctx *gin.Context) (string, bool) {
	query := request.FranchiseQuery{FranchiseID: ctx.Query("franchise_id")}
	if err := query.Validate(); err != nil {
		response.Render(ctx, err)
		return "", false
	}

	return query.FranchiseID, true
}
