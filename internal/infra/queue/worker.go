package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/onboard-desk/internal/infra/http/middleware"
)

// MailSender is the contract the worker needs from the SMTP layer.
type MailSender interface {
	SendNotification(to, subject, body string) error
}

// Worker drains the notification queue and emails the operator. It is the
// fire-and-forget half of the notifier: a failed send never touches the
// sheet write that produced the message.
type Worker struct {
	Channel       *amqp.Channel
	Mail          MailSender
	OperatorEmail string
}

func NewWorker(ch *amqp.Channel, mail MailSender, operatorEmail string) *Worker {
	return &Worker{
		Channel:       ch,
		Mail:          mail,
		OperatorEmail: operatorEmail,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotifyPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// mensagem podre, rejeita sem requeue para não travar a fila
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Notificação '%s' para o caso %s", payload.Event, payload.CaseID)

			if err := w.process(payload); err != nil {
				log.Printf("❌ [WORKER] Falha no envio do email: %s", err)
				middleware.RecordNotifyError()
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) process(payload NotifyPayload) error {
	subject, body := ComposeNotification(payload)
	return w.Mail.SendNotification(w.OperatorEmail, subject, body)
}

// ComposeNotification renders the operator email for a payload.
func ComposeNotification(p NotifyPayload) (subject, body string) {
	var event string
	switch p.Event {
	case "registered":
		event = "New client registered"
	case "stage1_done":
		event = "Contract stage submitted"
	case "stage2_done":
		event = "Pre-launch checklist submitted"
	case "password_set":
		event = "Client changed password"
	default:
		event = p.Event
	}

	subject = fmt.Sprintf("[onboard] %s - %s", event, p.Party)

	lines := []string{
		"Case:    " + p.CaseID,
		"Client:  " + p.Party,
		"Email:   " + p.Email,
		"Stage:   " + p.Stage,
	}
	if p.Plan != "" {
		lines = append(lines, "Plan:    "+p.Plan)
	}
	lines = append(lines, "At:      "+p.OccurredAt)

	return subject, strings.Join(lines, "\n")
}
