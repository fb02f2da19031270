package alerts

import (
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/internal/domain/repository"
	"github.com/jhoicas/sistema-inventario/pkg/logger"
)

// Notificador puerto de envío de la alerta de stock bajo (correo).
type Notificador interface {
	EnviarAlertaStockBajo(p *entity.Producto) error
}

// Service verifica el umbral de stock mínimo de un producto y notifica si se
// alcanzó. Es best-effort: todos los errores se registran aquí y jamás se
// propagan a la operación que disparó la verificación.
type Service struct {
	productos   repository.ProductoRepository
	notificador Notificador
	log         *logger.Logger
}

// NewService construye el servicio de alertas.
func NewService(productos repository.ProductoRepository, notificador Notificador, log *logger.Logger) *Service {
	return &Service{productos: productos, notificador: notificador, log: log}
}

// VerificarStockBajo consulta el producto y, si su stock actual está en o por
// debajo del mínimo, envía la alerta. Pensado para ejecutarse en una
// goroutine tras el commit de la operación que movió el stock.
func (s *Service) VerificarStockBajo(productoID int64) {
	producto, err := s.productos.GetByID(productoID)
	if err != nil {
		s.log.Error().Err(err).Int64("producto_id", productoID).Msg("alerta de stock: consultar producto")
		return
	}
	if producto == nil {
		s.log.Warn().Int64("producto_id", productoID).Msg("alerta de stock: producto no encontrado")
		return
	}
	if producto.StockActual > producto.StockMinimo {
		return
	}

	s.log.Warn().
		Int64("producto_id", producto.ID).
		Str("codigo", producto.Codigo).
		Int("stock_actual", producto.StockActual).
		Int("stock_minimo", producto.StockMinimo).
		Msg("stock bajo detectado")

	if err := s.notificador.EnviarAlertaStockBajo(producto); err != nil {
		s.log.Error().Err(err).Int64("producto_id", producto.ID).Msg("enviar alerta de stock bajo")
	}
}
