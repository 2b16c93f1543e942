package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/withamcommunity/wmc-api/api"
	"github.com/withamcommunity/wmc-api/notifications"
	"github.com/withamcommunity/wmc-api/notifications/sendgrid"
	"github.com/withamcommunity/wmc-api/notifications/smtp"
	"github.com/withamcommunity/wmc-api/stripe"
	"go.vocdoni.io/dvote/log"
)

func main() {
	log.Init("debug", "stdout", nil)
	// define flags
	flag.StringP("host", "h", "0.0.0.0", "listen address")
	flag.IntP("port", "p", 8080, "listen port")
	flag.String("allowed-origins", "http://localhost:3000", "comma separated list of allowed CORS origins")
	flag.String("email-provider", "smtp", "email delivery provider (smtp or sendgrid)")
	flag.String("sendgrid-api-key", "", "SendGrid API key")
	flag.String("smtp-host", "smtp.gmail.com", "SMTP server host")
	flag.Int("smtp-port", 465, "SMTP server port")
	flag.String("smtp-user", "", "SMTP username")
	flag.String("smtp-pass", "", "SMTP password")
	flag.String("smtp-security", "ssl", "SMTP connection security (ssl or starttls)")
	flag.String("email-from", "", "sender address (defaults to the SMTP username)")
	flag.String("email-from-name", "WMC Website", "sender display name")
	flag.String("email-to", "", "destination address for contact form submissions")
	flag.String("stripe-secret", "", "Stripe secret key")
	flag.String("success-url", "http://localhost:3000", "redirect URL after a completed checkout")
	flag.String("cancel-url", "http://localhost:3000", "redirect URL after an abandoned checkout")
	flag.String("stripe-monthly-price-id", "", "optional pre-defined Stripe price for monthly donations")
	// parse flags
	flag.Parse()
	// initialize Viper
	viper.SetEnvPrefix("WMC")
	if err := viper.BindPFlags(flag.CommandLine); err != nil {
		panic(err)
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	// read the configuration
	host := viper.GetString("host")
	port := viper.GetInt("port")
	allowedOrigins := strings.Split(viper.GetString("allowed-origins"), ",")
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}
	emailFrom := viper.GetString("email-from")
	emailFromName := viper.GetString("email-from-name")
	emailTo := viper.GetString("email-to")

	// create the email notification service, if configured. The handlers
	// answer with a configuration error when it is missing.
	var mailService notifications.NotificationService
	switch provider := viper.GetString("email-provider"); provider {
	case "sendgrid":
		if apiKey := viper.GetString("sendgrid-api-key"); apiKey != "" && emailFrom != "" {
			mailService = new(sendgrid.Email)
			if err := mailService.Init(&sendgrid.Config{
				FromName:    emailFromName,
				FromAddress: emailFrom,
				APIKey:      apiKey,
			}); err != nil {
				log.Fatalf("could not create the SendGrid email service: %v", err)
			}
		}
	case "smtp":
		smtpUser := viper.GetString("smtp-user")
		smtpPass := viper.GetString("smtp-pass")
		if emailFrom == "" {
			emailFrom = smtpUser
		}
		if smtpUser != "" && smtpPass != "" {
			mailService = new(smtp.Email)
			if err := mailService.Init(&smtp.Config{
				FromName:    emailFromName,
				FromAddress: emailFrom,
				Username:    smtpUser,
				Password:    smtpPass,
				Server:      viper.GetString("smtp-host"),
				Port:        viper.GetInt("smtp-port"),
				Security:    viper.GetString("smtp-security"),
			}); err != nil {
				log.Fatalf("could not create the SMTP email service: %v", err)
			}
		}
	default:
		log.Fatalf("unknown email provider %q", provider)
	}
	if mailService == nil || emailTo == "" {
		log.Warnw("email delivery not configured, /send-email will answer with an error")
	}

	// create the Stripe client, if configured
	var payments stripe.SessionCreator
	if secret := viper.GetString("stripe-secret"); secret != "" {
		payments = stripe.NewClient(secret)
	} else {
		log.Warnw("stripe not configured, checkout endpoints will answer with an error")
	}

	// create the local API server
	api.New(&api.Config{
		Host:           host,
		Port:           port,
		AllowedOrigins: allowedOrigins,
		MailService:    mailService,
		MailTo:         emailTo,
		Payments:       payments,
		SuccessURL:     viper.GetString("success-url"),
		CancelURL:      viper.GetString("cancel-url"),
		MonthlyPriceID: viper.GetString("stripe-monthly-price-id"),
	}).Start()
	// wait forever, as the server is running in a goroutine
	log.Infow("server started", "host", host, "port", port)
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}
