package controller

import (
	"officehub-be/internal/dto"
	"officehub-be/internal/entity"
	"officehub-be/internal/pkg/serverutils"
	"officehub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITrashController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	ListShared(ctx *fiber.Ctx) error
	MoveToTrash(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	PurgeOne(ctx *fiber.Ctx) error
	PurgeMany(ctx *fiber.Ctx) error
	EmptyAll(ctx *fiber.Ctx) error
}

type trashController struct {
	trashService service.ITrashService
	auth         fiber.Handler
}

func NewTrashController(trashService service.ITrashService, auth fiber.Handler) ITrashController {
	return &trashController{
		trashService: trashService,
		auth:         auth,
	}
}

func (c *trashController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/trash/v1")
	h.Use(c.auth)
	h.Get("", c.List)
	h.Get("shared", c.ListShared)
	h.Post("", c.MoveToTrash)
	h.Post("purge", c.PurgeMany)
	h.Post(":id/restore", c.Restore)
	h.Delete(":id", c.PurgeOne)
	h.Delete("", c.EmptyAll)
}

func (c *trashController) List(ctx *fiber.Ctx) error {
	userId, err := serverutils.GetUserId(ctx)
	if err != nil {
		return err
	}
	filter, err := parseTrashFilter(ctx)
	if err != nil {
		return err
	}

	records, total, err := c.trashService.List(ctx.UserContext(), userId, filter)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Trash items", toTrashList(records, total)))
}

// ListShared defaults to the caller's own department; department_id
// overrides it.
func (c *trashController) ListShared(ctx *fiber.Ctx) error {
	if _, err := serverutils.GetUserId(ctx); err != nil {
		return err
	}
	filter, err := parseTrashFilter(ctx)
	if err != nil {
		return err
	}

	departmentId := serverutils.GetDepartmentId(ctx)
	if raw := ctx.Query("department_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid department_id")
		}
		departmentId = &id
	}

	records, total, err := c.trashService.ListShared(ctx.UserContext(), departmentId, filter)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Shared trash items", toTrashList(records, total)))
}

func (c *trashController) MoveToTrash(ctx *fiber.Ctx) error {
	userId, err := serverutils.GetUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.MoveToTrashRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	itemType, err := entity.ParseItemType(req.ItemType)
	if err != nil {
		return err
	}

	record, err := c.trashService.MoveToTrash(ctx.UserContext(), userId, itemType, req.ItemId, req.Title, req.IsShared)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Moved to trash", toTrashRecordResponse(record)))
}

func (c *trashController) Restore(ctx *fiber.Ctx) error {
	userId, id, err := userAndParamId(ctx)
	if err != nil {
		return err
	}

	item, err := c.trashService.Restore(ctx.UserContext(), id, userId)
	if err != nil {
		return err
	}
	if item == nil {
		return ctx.JSON(serverutils.SuccessResponse[any]("Item no longer exists, trash entry removed", nil))
	}
	return ctx.JSON(serverutils.SuccessResponse("Item restored", &dto.RestoredItemResponse{
		ItemType: string(item.ItemType()),
		ItemId:   item.ItemId(),
		Title:    item.ItemTitle(),
	}))
}

func (c *trashController) PurgeOne(ctx *fiber.Ctx) error {
	userId, id, err := userAndParamId(ctx)
	if err != nil {
		return err
	}

	if err := c.trashService.PurgeOne(ctx.UserContext(), id, userId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Item permanently deleted", nil))
}

func (c *trashController) PurgeMany(ctx *fiber.Ctx) error {
	userId, err := serverutils.GetUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.PurgeManyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	count, err := c.trashService.PurgeMany(ctx.UserContext(), req.Ids, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Items permanently deleted", &dto.PurgeCountResponse{Deleted: count}))
}

func (c *trashController) EmptyAll(ctx *fiber.Ctx) error {
	userId, err := serverutils.GetUserId(ctx)
	if err != nil {
		return err
	}

	count, err := c.trashService.EmptyAll(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Trash emptied", &dto.PurgeCountResponse{Deleted: count}))
}

func userAndParamId(ctx *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userId, err := serverutils.GetUserId(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return userId, id, nil
}

func parseTrashFilter(ctx *fiber.Ctx) (service.TrashFilter, error) {
	filter := service.TrashFilter{
		Limit:  ctx.QueryInt("limit", 50),
		Offset: ctx.QueryInt("offset", 0),
	}
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if raw := ctx.Query("item_type"); raw != "" {
		itemType, err := entity.ParseItemType(raw)
		if err != nil {
			return filter, err
		}
		filter.ItemType = &itemType
	}
	return filter, nil
}

func toTrashRecordResponse(r *entity.TrashRecord) *dto.TrashRecordResponse {
	res := &dto.TrashRecordResponse{
		Id:                r.Id,
		ItemType:          string(r.ItemType),
		ItemId:            r.ItemId,
		OriginalTitle:     r.OriginalTitle,
		IsShared:          r.IsShared,
		DeletedAt:         r.DeletedAt,
		PermanentDeleteAt: r.PermanentDeleteAt,
		OwnerDepartmentId: r.OwnerDepartmentId,
	}
	if r.VisibilityType != nil {
		v := string(*r.VisibilityType)
		res.VisibilityType = &v
	}
	return res
}

func toTrashList(records []*entity.TrashRecord, total int64) *dto.TrashListResponse {
	items := make([]*dto.TrashRecordResponse, len(records))
	for i, r := range records {
		items[i] = toTrashRecordResponse(r)
	}
	return &dto.TrashListResponse{Items: items, Total: total}
}
