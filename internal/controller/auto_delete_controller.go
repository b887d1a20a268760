package controller

import (
	"officehub-be/internal/dto"
	"officehub-be/internal/entity"
	"officehub-be/internal/pkg/serverutils"
	"officehub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAutoDeleteController interface {
	RegisterRoutes(r fiber.Router)
	GetSetting(ctx *fiber.Ctx) error
	UpdateSetting(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
}

type autoDeleteController struct {
	settingService service.IAutoDeleteSettingService
	auth           fiber.Handler
}

func NewAutoDeleteController(settingService service.IAutoDeleteSettingService, auth fiber.Handler) IAutoDeleteController {
	return &autoDeleteController{
		settingService: settingService,
		auth:           auth,
	}
}

func (c *autoDeleteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auto-delete/v1")
	h.Use(c.auth)
	h.Get("setting", c.GetSetting)
	h.Put("setting", c.UpdateSetting)
	h.Get("logs", c.Logs)
}

func (c *autoDeleteController) GetSetting(ctx *fiber.Ctx) error {
	userId, err := serverutils.GetUserId(ctx)
	if err != nil {
		return err
	}

	period, err := c.settingService.GetUserPeriod(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Auto delete setting", toSettingResponse(period)))
}

func (c *autoDeleteController) UpdateSetting(ctx *fiber.Ctx) error {
	userId, err := serverutils.GetUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateAutoDeleteSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	setting, err := c.settingService.SetUserPeriod(ctx.UserContext(), userId, entity.AutoDeletePeriod(req.Period))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Auto delete setting updated", toSettingResponse(setting.Period)))
}

func (c *autoDeleteController) Logs(ctx *fiber.Ctx) error {
	userId, err := serverutils.GetUserId(ctx)
	if err != nil {
		return err
	}

	logs, err := c.settingService.RecentLogs(ctx.UserContext(), userId, ctx.QueryInt("limit", 20))
	if err != nil {
		return err
	}

	res := make([]*dto.AutoDeleteLogResponse, len(logs))
	for i, l := range logs {
		res[i] = &dto.AutoDeleteLogResponse{
			Id:           l.Id,
			Period:       string(l.Period),
			DeletedCount: l.DeletedCount,
			FailedItems:  l.FailedItems,
			ExecutedAt:   l.ExecutedAt,
		}
	}
	return ctx.JSON(serverutils.SuccessResponse("Auto delete logs", res))
}

func toSettingResponse(period entity.AutoDeletePeriod) *dto.AutoDeleteSettingResponse {
	available := make([]string, 0, len(entity.AutoDeletePeriods()))
	for _, p := range entity.AutoDeletePeriods() {
		available = append(available, string(p))
	}
	return &dto.AutoDeleteSettingResponse{Period: string(period), Available: available}
}
