package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutormatch/tutormatch/data"
)

// AddressController serves the province and municipality pickers.
type AddressController struct{}

func NewAddressController(g *gin.RouterGroup) *AddressController {
	a := &AddressController{}
	a.initRouter(g)
	return a
}

func (a *AddressController) initRouter(g *gin.RouterGroup) {
	g.GET("/provinces", a.provinces)
	g.GET("/provinces/:province/municipalities", a.municipalities)
}

func (a *AddressController) provinces(c *gin.Context) {
	jsonObj(c, data.Provinces(), nil)
}

func (a *AddressController) municipalities(c *gin.Context) {
	province := c.Param("province")
	list, ok := data.Municipalities(province)
	if !ok {
		pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "pages.address.unknownProvince", "Province=="+province))
		return
	}
	jsonObj(c, list, nil)
}
