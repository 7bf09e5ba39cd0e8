package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"depositflow/internal/domain/entity"
	"depositflow/internal/usecase"
	"depositflow/pkg/errors"
	"depositflow/pkg/response"
	"depositflow/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type createOrderRequest struct {
	Title           string          `json:"title" validate:"required"`
	RenterEmail     string          `json:"renter_email" validate:"required,email"`
	LandlordEmail   string          `json:"landlord_email" validate:"required,email"`
	PropertyAddress string          `json:"property_address" validate:"required"`
	DepositAmount   decimal.Decimal `json:"deposit_amount"`
	Description     string          `json:"description"`
}

type progressStageRequest struct {
	Stage       string `json:"stage" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Completed   bool   `json:"completed"`
	Date        string `json:"date"`
	CompletedBy string `json:"completed_by"`
}

type updateOrderRequest struct {
	Title           *string                `json:"title"`
	RenterEmail     *string                `json:"renter_email" validate:"omitempty,email"`
	LandlordEmail   *string                `json:"landlord_email" validate:"omitempty,email"`
	PropertyAddress *string                `json:"property_address"`
	DepositAmount   *decimal.Decimal       `json:"deposit_amount"`
	Description     *string                `json:"description"`
	Status          *string                `json:"status"`
	ProgressStages  []progressStageRequest `json:"progress_stages"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	createdBy := c.QueryParam("created_by")
	if createdBy == "" {
		return response.Error(c, errors.BadRequest("created_by parameter is required", nil))
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.Create(c.Request().Context(), usecase.CreateOrderInput{
		Title:           req.Title,
		RenterEmail:     req.RenterEmail,
		LandlordEmail:   req.LandlordEmail,
		PropertyAddress: req.PropertyAddress,
		DepositAmount:   req.DepositAmount,
		Description:     req.Description,
		CreatedBy:       createdBy,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

// ListOrders serves both the role-scoped view (user_email + user_role) and
// the unfiltered listing with skip/limit slicing.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	params := utils.GetSliceParams(c)

	orders, err := h.orderUseCase.List(
		c.Request().Context(),
		c.QueryParam("user_email"),
		c.QueryParam("user_role"),
		params.Skip,
		params.Limit,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}

func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateOrderInput{
		Title:           req.Title,
		RenterEmail:     req.RenterEmail,
		LandlordEmail:   req.LandlordEmail,
		PropertyAddress: req.PropertyAddress,
		DepositAmount:   req.DepositAmount,
		Description:     req.Description,
	}

	if req.Status != nil {
		status, err := entity.ParseOrderStatus(*req.Status)
		if err != nil {
			return response.Error(c, err)
		}
		input.Status = &status
	}

	if req.ProgressStages != nil {
		stages := make([]entity.ProgressStage, 0, len(req.ProgressStages))
		for _, ps := range req.ProgressStages {
			stageType, err := entity.ParseStageType(ps.Stage)
			if err != nil {
				return response.Error(c, err)
			}
			stages = append(stages, entity.ProgressStage{
				Stage:       stageType,
				Title:       ps.Title,
				Completed:   ps.Completed,
				Date:        ps.Date,
				CompletedBy: ps.CompletedBy,
			})
		}
		input.ProgressStages = stages
	}

	order, err := h.orderUseCase.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	createdBy := c.QueryParam("created_by")
	if createdBy == "" {
		return response.Error(c, errors.BadRequest("created_by parameter is required", nil))
	}

	if err := h.orderUseCase.Delete(c.Request().Context(), c.Param("id"), createdBy); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}
