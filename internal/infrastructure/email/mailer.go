// Package email envía por SMTP las alertas de stock bajo.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/sistema-inventario/internal/application/alerts"
	"github.com/jhoicas/sistema-inventario/internal/domain/entity"
	"github.com/jhoicas/sistema-inventario/pkg/config"
)

var _ alerts.Notificador = (*SMTPNotificador)(nil)

// SMTPNotificador envía las alertas de stock bajo por correo. El dialer abre
// una conexión nueva por envío: el volumen de alertas es bajo y así no hay
// conexiones SMTP ociosas que mantener.
type SMTPNotificador struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewSMTPNotificador construye el notificador con la configuración SMTP.
func NewSMTPNotificador(cfg config.SMTPConfig) *SMTPNotificador {
	return &SMTPNotificador{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		to:     cfg.To,
	}
}

// EnviarAlertaStockBajo envía el correo de alerta para un producto en o bajo
// su stock mínimo, en texto plano con alternativa HTML.
func (n *SMTPNotificador) EnviarAlertaStockBajo(p *entity.Producto) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", fmt.Sprintf("Alerta de Stock Bajo: %s", p.Nombre))
	m.SetBody("text/plain", cuerpoTexto(p))
	m.AddAlternative("text/html", cuerpoHTML(p))

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar alerta de stock bajo: %w", err)
	}
	return nil
}

func cuerpoTexto(p *entity.Producto) string {
	return fmt.Sprintf(`¡Atención!
El producto '%s' (Código: %s) ha alcanzado un nivel de stock bajo.

- Stock Actual: %d unidades.
- Stock Mínimo: %d unidades.

Por favor, considere realizar una nueva orden de compra.
`, p.Nombre, p.Codigo, p.StockActual, p.StockMinimo)
}

func cuerpoHTML(p *entity.Producto) string {
	return fmt.Sprintf(`<h1>¡Atención! Alerta de Stock Bajo</h1>
<p>El producto <strong>%s</strong> (Código: <em>%s</em>) ha alcanzado un nivel de stock bajo.</p>
<ul>
  <li><strong>Stock Actual:</strong> %d unidades.</li>
  <li><strong>Stock Mínimo:</strong> %d unidades.</li>
</ul>
<p>Por favor, considere realizar una nueva orden de compra.</p>`,
		p.Nombre, p.Codigo, p.StockActual, p.StockMinimo)
}
