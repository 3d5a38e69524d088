package service

import (
	"context"

	"go.uber.org/zap"
)

// Workflow notification templates. The portal serves Spanish-speaking
// suppliers; the admin test message stays in English.
const (
	subjectWelcome = "Registro Recibido - Portal Proveedores"
	bodyWelcome    = "Gracias por registrarte en nuestro portal. Tu cuenta está en revisión. En breve recibirás una respuesta."

	subjectApproved = "Proveedor Aprobado - Portal"
	bodyApproved    = "Tu cuenta ha sido aprobada. Ingresa al portal para ver solicitudes."

	subjectRegistrationRejected = "Registro Rechazado"
	bodyRegistrationRejected    = "Lo sentimos, tu solicitud de registro como proveedor ha sido rechazada."

	subjectWinner = "Felicidades - Ganaste la cotización"
	bodyWinner    = "Tu oferta ha sido seleccionada como ganadora. Procede con el pedido."

	subjectRequestClosed = "Solicitud Cerrada"
	bodyRequestClosed    = "Gracias por tu oferta. La solicitud ha sido cerrada."

	subjectTest = "Test Email - Portal"
	bodyTest    = "This is a test email to verify SMTP settings."
)

// notification is a pending dispatch intent produced by a committed workflow
// step.
type notification struct {
	to      string
	subject string
	body    string
}

// dispatch delivers intents sequentially, after the triggering mutation has
// already committed. A failed delivery is logged and counted; it aborts
// neither the remaining intents nor the workflow step that produced them.
func dispatch(ctx context.Context, m Mailer, logger *zap.Logger, notes []notification) int {
	failed := 0
	for _, n := range notes {
		if err := m.Send(ctx, n.to, n.subject, n.body); err != nil {
			failed++
			logger.Warn("notification delivery failed",
				zap.String("to", n.to),
				zap.String("subject", n.subject),
				zap.Error(err))
		}
	}

	return failed
}
