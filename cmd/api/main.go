package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/onboard-desk/internal/infra/docgen"
	"github.com/xavierca1/onboard-desk/internal/infra/http/handlers"
	"github.com/xavierca1/onboard-desk/internal/infra/http/middleware"
	"github.com/xavierca1/onboard-desk/internal/infra/mail"
	"github.com/xavierca1/onboard-desk/internal/infra/queue"
	"github.com/xavierca1/onboard-desk/internal/sheet"
	"github.com/xavierca1/onboard-desk/internal/store"
	"github.com/xavierca1/onboard-desk/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Store (Google Sheet)
	sheetClient := sheet.NewClient(
		os.Getenv("SHEET_ID"),
		os.Getenv("GOOGLE_CREDENTIALS_FILE"),
	)
	if name := os.Getenv("SHEET_NAME"); name != "" {
		sheetClient.SheetName = name
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := sheetClient.Connect(ctx); err != nil {
		log.Fatal(err)
	}
	cancel()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBIT_USER"), os.Getenv("RABBIT_PASS"),
		os.Getenv("RABBIT_HOST"), os.Getenv("RABBIT_PORT"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 2. Resolver e Upserter
	resolver := store.NewResolver(sheetClient)
	upserter := store.NewUpserter(sheetClient)

	// 3. Side effects
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
	)

	// 4. Worker (consome a fila e envia o email do operador)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender, os.Getenv("OPERATOR_EMAIL"))
	go worker.Start(queue.QueueName)

	// 5. UseCases
	registerUC := usecase.NewRegisterUseCase(resolver, upserter, producer)
	loginUC := usecase.NewLoginUseCase(resolver)
	stage1UC := usecase.NewSubmitStage1UseCase(resolver, upserter, producer, docgen.NewGenerator())
	stage2UC := usecase.NewSubmitStage2UseCase(resolver, upserter, producer)
	setPasswordUC := usecase.NewSetPasswordUseCase(resolver, upserter, producer)

	// 6. Handlers
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, setPasswordUC)
	clientHandler := handlers.NewClientHandler(resolver, stage1UC, stage2UC)
	healthHandler := handlers.NewHealthHandler(sheetClient, rabbitMQ.Conn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/register", authHandler.HandleRegister)
	r.Post("/login", authHandler.HandleLogin)
	r.Get("/clients/{email}", clientHandler.HandleGet)
	r.Post("/clients/{email}/stage1", clientHandler.HandleStage1)
	r.Post("/clients/{email}/stage2", clientHandler.HandleStage2)
	r.Put("/clients/{email}/password", authHandler.HandleSetPassword)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Onboard Desk rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
