package main

import (
	"log"

	"github.com/withsocio/socio-backend/config"
	"github.com/withsocio/socio-backend/infra/queue"
	"github.com/withsocio/socio-backend/internal/mail"
)

func main() {
	cfg := config.LoadConfig()

	log.Println("Mail worker starting...")
	log.Printf("KafkaBroker=%s Topic=%s GroupID=%s\n",
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
	)

	mailer := mail.NewMailer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.MailFrom,
		cfg.MailFromName,
	)
	templates := mail.Templates{
		BaseURL:      cfg.SiteBaseURL,
		CareersEmail: cfg.CareersEmail,
	}

	handler := mail.NewEventHandler(mailer, templates)

	consumer := queue.NewKafkaConsumer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		handler,
	)

	log.Println("Mail worker listening for events...")
	consumer.Listen()
}
