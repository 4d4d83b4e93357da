package http

import (
	"encoding/json"
	"net/http"

	"github.com/aleclahey/payroll-backend-go/internal/domain/benefit"
	"github.com/aleclahey/payroll-backend-go/internal/handler/http/response"
)

type BenefitHandler interface {
	ListBenefits(w http.ResponseWriter, r *http.Request)
	CreateBenefit(w http.ResponseWriter, r *http.Request)
	DeleteBenefit(w http.ResponseWriter, r *http.Request)
	ListPlans(w http.ResponseWriter, r *http.Request)
}

type benefitHandlerImpl struct {
	benefitService benefit.BenefitService
}

func NewBenefitHandler(benefitService benefit.BenefitService) BenefitHandler {
	return &benefitHandlerImpl{benefitService: benefitService}
}

func (h *benefitHandlerImpl) ListBenefits(w http.ResponseWriter, r *http.Request) {
	results, err := h.benefitService.ListBenefits(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *benefitHandlerImpl) CreateBenefit(w http.ResponseWriter, r *http.Request) {
	var req benefit.CreateBenefitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.benefitService.CreateBenefit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Benefit enrolled successfully", result)
}

func (h *benefitHandlerImpl) DeleteBenefit(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.benefitService.DeleteBenefit(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Benefit removed successfully"})
}

func (h *benefitHandlerImpl) ListPlans(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.benefitService.ListPlans(r.Context()))
}
