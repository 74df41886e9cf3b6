package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phonkluver/forel-app-sub000/configs"
	"github.com/phonkluver/forel-app-sub000/entity"
	"github.com/phonkluver/forel-app-sub000/pkg/resp"
	"github.com/phonkluver/forel-app-sub000/repository"
	"github.com/phonkluver/forel-app-sub000/utils"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type MenuController struct {
	Repo    *repository.MenuRepository
	CatRepo *repository.CategoryRepository
	Cfg     *configs.Config
}

func NewMenuController(repo *repository.MenuRepository, catRepo *repository.CategoryRepository, cfg *configs.Config) *MenuController {
	return &MenuController{Repo: repo, CatRepo: catRepo, Cfg: cfg}
}

// GET /api/menu (public, active only, display order)
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Repo.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/admin/menu
func (ctl *MenuController) ListAll(c *gin.Context) {
	items, err := ctl.Repo.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu/category/:id
func (ctl *MenuController) ListByCategory(c *gin.Context) {
	catID := c.Param("id")
	if _, err := ctl.CatRepo.FindByID(catID); err != nil {
		resp.NotFound(c, "category not found")
		return
	}
	items, err := ctl.Repo.ListByCategory(catID, true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/menu/item/:id
func (ctl *MenuController) Get(c *gin.Context) {
	item, err := ctl.Repo.FindByID(c.Param("id"))
	if err != nil || !item.IsActive {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, item)
}

// GET /api/menu/item/:id/qr
// PNG QR code pointing at the item's public page, for table cards.
func (ctl *MenuController) QR(c *gin.Context) {
	item, err := ctl.Repo.FindByID(c.Param("id"))
	if err != nil || !item.IsActive {
		resp.NotFound(c, "menu item not found")
		return
	}
	png, err := qrcode.Encode(ctl.Cfg.PublicBaseURL+"/menu/"+item.ID, qrcode.Medium, 256)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// POST /api/admin/menu (multipart)
func (ctl *MenuController) Create(c *gin.Context) {
	name := localizedFromForm(c, "name")
	if !name.Complete() {
		resp.BadRequest(c, "all localized names are required")
		return
	}
	price, err := formFloat(c, "price")
	if err != nil || price < 0 {
		resp.BadRequest(c, "price must be a non-negative number")
		return
	}
	catID := c.PostForm("categoryId")
	if catID == "" {
		resp.BadRequest(c, "categoryId is required")
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

	item := entity.MenuItem{
		Name:        name,
		Description: localizedFromForm(c, "description"),
		Price:       price,
		CategoryID:  catID,
		SortOrder:   sortOrder,
		IsActive:    isActive,
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveImage(file, ctl.Cfg.UploadDir, ctl.Cfg.MaxUploadSize)
		if err != nil {
			ctl.uploadError(c, err)
			return
		}
		item.Image = path
	}

	if err := ctl.Repo.Create(&item); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			resp.BadRequest(c, "categoryId does not reference an existing category")
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, item)
}

// PUT /api/admin/menu/:id (multipart, fully-formed fields)
func (ctl *MenuController) Update(c *gin.Context) {
	item, err := ctl.Repo.FindByID(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}

	name := localizedFromForm(c, "name")
	if !name.Complete() {
		resp.BadRequest(c, "all localized names are required")
		return
	}
	price, err := formFloat(c, "price")
	if err != nil || price < 0 {
		resp.BadRequest(c, "price must be a non-negative number")
		return
	}

	item.Name = name
	item.Description = localizedFromForm(c, "description")
	item.Price = price
	if catID := c.PostForm("categoryId"); catID != "" {
		item.CategoryID = catID
	}
	if item.SortOrder, err = formInt(c, "sortOrder", item.SortOrder); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if item.IsActive, err = formBool(c, "isActive", item.IsActive); err != nil {
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
		oldImage = item.Image
		item.Image = path
	}

	if err := ctl.Repo.Update(item); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			resp.BadRequest(c, "categoryId does not reference an existing category")
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	if oldImage != "" {
		utils.RemoveImage(ctl.Cfg.UploadDir, oldImage)
	}
	resp.OK(c, item)
}

// DELETE /api/admin/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id := c.Param("id")
	item, err := ctl.Repo.FindByID(id)
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}

	if err := ctl.Repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
		} else {
			resp.ServerError(c, err)
		}
		return
	}

	utils.RemoveImage(ctl.Cfg.UploadDir, item.Image)
	resp.Message(c, "menu item deleted")
}

// PATCH /api/admin/menu/:id/toggle
func (ctl *MenuController) Toggle(c *gin.Context) {
	id := c.Param("id")
	if err := ctl.Repo.ToggleActive(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
		} else {
			resp.ServerError(c, err)
		}
		return
	}
	item, err := ctl.Repo.FindByID(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

func (ctl *MenuController) uploadError(c *gin.Context, err error) {
	if errors.Is(err, utils.ErrFileTooLarge) || errors.Is(err, utils.ErrBadImageType) {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.ServerError(c, err)
}
