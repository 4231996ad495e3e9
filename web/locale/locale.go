// Package locale loads the TOML translation bundle and picks a localizer per request.
package locale

import (
	"io/fs"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/tutormatch/tutormatch/logger"
)

const localizerKey = "localizer"

var i18nBundle *i18n.Bundle

// InitLocalizer parses every file under translation/ in i18nFS.
func InitLocalizer(i18nFS fs.FS) error {
	bundle := i18n.NewBundle(language.MustParse("en-US"))
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if err := parseTranslationFiles(i18nFS, bundle); err != nil {
		return err
	}
	i18nBundle = bundle
	return nil
}

func createTemplateData(params []string, seperator ...string) map[string]any {
	sep := "=="
	if len(seperator) > 0 {
		sep = seperator[0]
	}

	templateData := make(map[string]any)
	for _, param := range params {
		parts := strings.SplitN(param, sep, 2)
		if len(parts) != 2 {
			continue
		}
		templateData[parts[0]] = parts[1]
	}

	return templateData
}

// I18n localizes key with params of the form "Name==value". It falls back to
// the key itself when no localizer is available or the key is missing.
func I18n(localizer *i18n.Localizer, key string, params ...string) string {
	if localizer == nil {
		return key
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: createTemplateData(params),
	})
	if err != nil {
		logger.Warningf("Failed to localize message %s: %v", key, err)
		return key
	}
	return msg
}

// LocalizerMiddleware selects a language from the lang cookie or Accept-Language.
func LocalizerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if i18nBundle == nil {
			c.Next()
			return
		}
		var lang string
		if cookie, err := c.Request.Cookie("lang"); err == nil {
			lang = strings.ReplaceAll(cookie.Value, "_", "-")
		}
		c.Set(localizerKey, i18n.NewLocalizer(i18nBundle, lang, c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// Web localizes key for the current request.
func Web(c *gin.Context, key string, params ...string) string {
	var localizer *i18n.Localizer
	if v, ok := c.Get(localizerKey); ok {
		localizer, _ = v.(*i18n.Localizer)
	}
	return I18n(localizer, key, params...)
}

func parseTranslationFiles(i18nFS fs.FS, bundle *i18n.Bundle) error {
	return fs.WalkDir(i18nFS, "translation", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(i18nFS, path)
		if err != nil {
			return err
		}
		_, err = bundle.ParseMessageFileBytes(data, path)
		return err
	})
}
