package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/phonkluver/forel-app-sub000/configs"
	"github.com/phonkluver/forel-app-sub000/entity"
	"github.com/phonkluver/forel-app-sub000/pkg/resp"
	"github.com/phonkluver/forel-app-sub000/repository"
	"github.com/phonkluver/forel-app-sub000/utils"
	"gorm.io/gorm"
)

type CategoryController struct {
	Repo *repository.CategoryRepository
	Cfg  *configs.Config
}

func NewCategoryController(repo *repository.CategoryRepository, cfg *configs.Config) *CategoryController {
	return &CategoryController{Repo: repo, Cfg: cfg}
}

// GET /api/categories (public, active only)
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Repo.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /api/admin/categories
func (ctl *CategoryController) ListAll(c *gin.Context) {
	cats, err := ctl.Repo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /api/admin/categories (multipart)
func (ctl *CategoryController) Create(c *gin.Context) {
	name := localizedFromForm(c, "name")
	if !name.Complete() {
		resp.BadRequest(c, "all localized names are required")
		return
	}

	sortOrder, err := formInt(c, "sortOrder", 0)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	isActive, err := formBool(c, "isActive", true)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat := entity.Category{
		Name:      name,
		SortOrder: sortOrder,
		IsActive:  isActive,
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveImage(file, ctl.Cfg.UploadDir, ctl.Cfg.MaxUploadSize)
		if err != nil {
			ctl.uploadError(c, err)
			return
		}
		cat.Image = path
	}

	if err := ctl.Repo.Create(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /api/admin/categories/:id (multipart, fully-formed fields)
func (ctl *CategoryController) Update(c *gin.Context) {
	cat, err := ctl.Repo.FindByID(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "category not found")
		return
	}

	name := localizedFromForm(c, "name")
	if !name.Complete() {
		resp.BadRequest(c, "all localized names are required")
		return
	}
	cat.Name = name
	if cat.SortOrder, err = formInt(c, "sortOrder", cat.SortOrder); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if cat.IsActive, err = formBool(c, "isActive", cat.IsActive); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	oldImage := ""
	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveImage(file, ctl.Cfg.UploadDir, ctl.Cfg.MaxUploadSize)
		if err != nil {
			ctl.uploadError(c, err)
			return
		}
		oldImage = cat.Image
		cat.Image = path
	}

	if err := ctl.Repo.Update(cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	if oldImage != "" {
		utils.RemoveImage(ctl.Cfg.UploadDir, oldImage)
	}
	resp.OK(c, cat)
}

// DELETE /api/admin/categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id := c.Param("id")
	cat, err := ctl.Repo.FindByID(id)
	if err != nil {
		resp.NotFound(c, "category not found")
		return
	}

	if err := ctl.Repo.Delete(id); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryInUse):
			resp.BadRequest(c, "category still has menu items")
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "category not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	utils.RemoveImage(ctl.Cfg.UploadDir, cat.Image)
	resp.Message(c, "category deleted")
}

// PATCH /api/admin/categories/:id/toggle
func (ctl *CategoryController) Toggle(c *gin.Context) {
	id := c.Param("id")
	if err := ctl.Repo.ToggleActive(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	cat, err := ctl.Repo.FindByID(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

func (ctl *CategoryController) uploadError(c *gin.Context, err error) {
	if errors.Is(err, utils.ErrFileTooLarge) || errors.Is(err, utils.ErrBadImageType) {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.ServerError(c, err)
}
