package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	response "ngo_portal/internal/adapter/http/dto/response"
	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase"
	"ngo_portal/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=../../../usecase/donation_usecase.go -destination=mocks/mock_donation_usecase.go -package=mocks

const exportStoreS3 = "s3"

type DonationHandler struct {
	useCase usecase.IDonationUseCase
}

func NewDonationHandler(useCase usecase.IDonationUseCase) *DonationHandler {
	return &DonationHandler{useCase: useCase}
}

// ListDonations godoc
// @Summary      List donations
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        status  query     string  false  "pending, success, failed or refunded"
// @Param        search  query     string  false  "Donor name, email or payment reference"
// @Param        sort    query     string  false  "created_at or amount"
// @Param        order   query     string  false  "asc or desc"
// @Success      200     {object}  response.DonationListResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /admin/donations [get]
func (h *DonationHandler) ListDonations(c *gin.Context) {
	items, err := h.useCase.List(c.Request.Context(), donationFilterFromQuery(c))
	if err != nil {
		log.Printf("[donation][handler] list failed err=%v", err)
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDonations(items))
}

// GetDonation godoc
// @Summary      Get a donation
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Donation ID"
// @Success      200  {object}  response.DonationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /admin/donations/{id} [get]
func (h *DonationHandler) GetDonation(c *gin.Context) {
	d, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDonation(d))
}

// ExportDonations godoc
// @Summary      Export donations as CSV
// @Description  Streams the CSV, or uploads it to the reports bucket with store=s3.
// @Tags         admin
// @Produce      text/csv
// @Produce      json
// @Security     Bearer
// @Param        status  query     string  false  "pending, success, failed or refunded"
// @Param        search  query     string  false  "Donor name, email or payment reference"
// @Param        store   query     string  false  "s3"
// @Success      200     {object}  response.DonationExportResponse
// @Failure      503     {object}  pkg.HTTPError
// @Router       /admin/donations/export [get]
func (h *DonationHandler) ExportDonations(c *gin.Context) {
	f := donationFilterFromQuery(c)

	if strings.EqualFold(c.Query("store"), exportStoreS3) {
		export, err := h.useCase.ExportCSVToStore(c.Request.Context(), f)
		if err != nil {
			log.Printf("[donation][handler] export to store failed err=%v", err)
			appErr := mapDonationError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromDonationExport(export))
		return
	}

	data, err := h.useCase.ExportCSV(c.Request.Context(), f)
	if err != nil {
		log.Printf("[donation][handler] export failed err=%v", err)
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	filename := fmt.Sprintf("donations-%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func donationFilterFromQuery(c *gin.Context) usecase.DonationFilter {
	return usecase.DonationFilter{
		Status: entities.PaymentStatus(c.Query("status")),
		Search: c.Query("search"),
		SortBy: c.Query("sort"),
		Asc:    strings.EqualFold(c.Query("order"), "asc"),
	}
}

func mapDonationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDonationID):
		return pkg.NewDomainErrorSimple("INVALID_DONATION_ID", "Invalid donation id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDonationFilter):
		return pkg.NewDomainError("INVALID_FILTER", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDonationNotFound):
		return pkg.NewDomainErrorSimple("DONATION_NOT_FOUND", "Donation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReportStoreNotEnabled):
		return pkg.NewDomainErrorSimple("REPORT_STORE_DISABLED", "Report storage is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
