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

type BannerController struct {
	Repo *repository.BannerRepository
	Cfg  *configs.Config
}

func NewBannerController(repo *repository.BannerRepository, cfg *configs.Config) *BannerController {
	return &BannerController{Repo: repo, Cfg: cfg}
}

// GET /api/banners/active
func (ctl *BannerController) ListActive(c *gin.Context) {
	banners, err := ctl.Repo.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, banners)
}

// GET /api/admin/banners
func (ctl *BannerController) ListAll(c *gin.Context) {
	banners, err := ctl.Repo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, banners)
}

// POST /api/admin/banners (multipart, image required)
func (ctl *BannerController) Create(c *gin.Context) {
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

	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image is required")
		return
	}
	path, err := utils.SaveImage(file, ctl.Cfg.UploadDir, ctl.Cfg.MaxUploadSize)
	if err != nil {
		ctl.uploadError(c, err)
		return
	}

	banner := entity.Banner{
		Image:     path,
		SortOrder: sortOrder,
		IsActive:  isActive,
	}
	if err := ctl.Repo.Create(&banner); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, banner)
}

// PUT /api/admin/banners/:id (multipart)
func (ctl *BannerController) Update(c *gin.Context) {
	banner, err := ctl.Repo.FindByID(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "banner not found")
		return
	}

	if banner.SortOrder, err = formInt(c, "sortOrder", banner.SortOrder); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if banner.IsActive, err = formBool(c, "isActive", banner.IsActive); err != nil {
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
		oldImage = banner.Image
		banner.Image = path
	}

	if err := ctl.Repo.Update(banner); err != nil {
		resp.ServerError(c, err)
		return
	}
	if oldImage != "" {
		utils.RemoveImage(ctl.Cfg.UploadDir, oldImage)
	}
	resp.OK(c, banner)
}

// DELETE /api/admin/banners/:id
func (ctl *BannerController) Delete(c *gin.Context) {
	id := c.Param("id")
	banner, err := ctl.Repo.FindByID(id)
	if err != nil {
		resp.NotFound(c, "banner not found")
		return
	}

	if err := ctl.Repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "banner not found")
		} else {
			resp.ServerError(c, err)
		}
		return
	}

	utils.RemoveImage(ctl.Cfg.UploadDir, banner.Image)
	resp.Message(c, "banner deleted")
}

// PATCH /api/admin/banners/:id/toggle
func (ctl *BannerController) Toggle(c *gin.Context) {
	id := c.Param("id")
	if err := ctl.Repo.ToggleActive(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "banner not found")
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	banner, err := ctl.Repo.FindByID(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, banner)
}

func (ctl *BannerController) uploadError(c *gin.Context, err error) {
	if errors.Is(err, utils.ErrFileTooLarge) || errors.Is(err, utils.ErrBadImageType) {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.ServerError(c, err)
}
