package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epeers/company-accounts/internal/middleware"
	"github.com/epeers/company-accounts/internal/models"
	"github.com/epeers/company-accounts/internal/services"
)

// Services are the collaborators the HTTP surface is built on
type Services struct {
	Transactions    middleware.TransactionGetter
	CompanyAccounts *services.CompanyAccountService
	SmallFull       *services.SmallFullService
	Periods         *services.PeriodService
	Notes           *services.NoteService
	Filings         *services.FilingService
}

// RegisterRoutes adds every company accounts endpoint to router
func RegisterRoutes(router *gin.Engine, svc Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	companyAccountHandler := NewCompanyAccountHandler(svc.CompanyAccounts, svc.SmallFull)
	filingHandler := NewFilingHandler(svc.Filings)

	accounts := router.Group("/transactions/:transaction_id/company-accounts",
		middleware.RequireIdentity(), middleware.LoadTransaction(svc.Transactions))
	accounts.POST("", companyAccountHandler.Create)
	accounts.GET("/:company_accounts_id", companyAccountHandler.Get)

	smallFull := accounts.Group("/:company_accounts_id/small-full")
	smallFull.POST("", companyAccountHandler.CreateSmallFull)
	smallFull.GET("", companyAccountHandler.GetSmallFull)

	for _, period := range []models.PeriodType{models.PeriodCurrent, models.PeriodPrevious} {
		h := NewPeriodHandler(svc.Periods, period)
		path := "/" + period.URISegment()
		smallFull.POST(path, h.Create)
		smallFull.GET(path, h.Get)
		smallFull.PUT(path, h.Update)
		smallFull.DELETE(path, h.Delete)
	}

	registerSmallFullNotes(smallFull, svc.Notes)

	private := router.Group("/private/transactions/:transaction_id/company-accounts")
	private.GET("/:company_accounts_id/filings", filingHandler.Generate)
}
