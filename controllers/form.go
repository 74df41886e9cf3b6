package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/phonkluver/forel-app-sub000/entity"
)

// Multipart write endpoints carry localized fields as name_ru, name_en
// and so on, next to the image part.

func localizedFromForm(c *gin.Context, prefix string) entity.Localized {
	return entity.Localized{
		RU: c.PostForm(prefix + "_ru"),
		EN: c.PostForm(prefix + "_en"),
		TJ: c.PostForm(prefix + "_tj"),
		UZ: c.PostForm(prefix + "_uz"),
	}
}

// An absent field falls back to the given default; a malformed one is
// an error, not a silent default.

func formInt(c *gin.Context, key string, fallback int) (int, error) {
	v := c.PostForm(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}

func formFloat(c *gin.Context, key string) (float64, error) {
	return strconv.ParseFloat(c.PostForm(key), 64)
}

func formBool(c *gin.Context, key string, fallback bool) (bool, error) {
	v := c.PostForm(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean", key)
	}
	return b, nil
}
