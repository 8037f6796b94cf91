package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"biocristal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// precioCacheTTL keeps public price lookups cheap without serving stale
// prices for long. The cache is invalidated on product update and delete.
const precioCacheTTL = 10 * time.Minute

type precioResponse struct {
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
}

type PrecioHandler struct {
	svc service.ProductoService
	rdb *redis.Client
}

func NewPrecioHandler(svc service.ProductoService, rdb *redis.Client) *PrecioHandler {
	return &PrecioHandler{svc: svc, rdb: rdb}
}

// Consultar is the public price-check endpoint: no authentication, no stock,
// no purchase price. Answers from redis when possible.
func (h *PrecioHandler) Consultar(c *gin.Context) {
	codigo := c.Param("codigo")
	ctx := c.Request.Context()
	key := service.PrecioCacheKey(codigo)

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, key).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}

	p, err := h.svc.Obtener(ctx, codigo)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := precioResponse{Codigo: p.Codigo, Nombre: p.Nombre, PrecioVenta: p.PrecioVenta}

	if h.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := h.rdb.Set(ctx, key, raw, precioCacheTTL).Err(); err != nil {
				log.Warn().Str("codigo", codigo).Err(err).Msg("no se pudo cachear el precio")
			}
		}
	}
	c.JSON(http.StatusOK, resp)
}
