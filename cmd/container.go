package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/Abraxas-365/counsel/counseling/career"
	"github.com/Abraxas-365/counsel/counseling/session"
	"github.com/Abraxas-365/counsel/counseling/session/sessionapi"
	"github.com/Abraxas-365/counsel/counseling/session/sessioninfra"
	"github.com/Abraxas-365/counsel/counseling/session/sessionsrv"
	"github.com/Abraxas-365/counsel/counseling/session/worker"
	"github.com/Abraxas-365/counsel/internal/ai/generative"
	"github.com/Abraxas-365/counsel/internal/pdf"
	"github.com/Abraxas-365/counsel/internal/textnorm"
	"github.com/Abraxas-365/counsel/pkg/fsx"
	"github.com/Abraxas-365/counsel/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/counsel/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/counsel/pkg/logx"
)

const extractionQueueName = "resume_extraction_jobs"

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Core components
	Normalizer *textnorm.Normalizer
	Catalog    *career.Catalog
	Queue      session.ExtractionQueue

	// Domain Services
	SessionService *sessionsrv.Service

	// Workers
	ExtractionWorker *worker.ExtractionWorker

	// API Handlers
	SessionHandlers *sessionapi.Handlers

	// Middleware
	AuthMiddleware fiber.Handler
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. File Storage
	switch os.Getenv("STORAGE_BACKEND") {
	case "s3":
		awsRegion := os.Getenv("AWS_REGION")
		awsBucket := os.Getenv("AWS_BUCKET")
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.S3Client = s3.NewFromConfig(cfg)
		c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "counsel")
	default:
		storageDir := os.Getenv("STORAGE_DIR")
		if storageDir == "" {
			storageDir = "./data"
		}
		c.FileSystem = fsxlocal.NewLocalFileSystem(storageDir)
	}
}

func (c *Container) initServices() {
	// Text pipeline and catalog
	norm, err := textnorm.New()
	if err != nil {
		logx.Fatalf("Failed to load text normalizer: %v", err)
	}
	c.Normalizer = norm

	catalog, err := career.NewCatalog(career.BuiltInDefinitions(), norm)
	if err != nil {
		logx.Fatalf("Failed to build career catalog: %v", err)
	}
	c.Catalog = catalog

	// Collaborators
	generator := generative.NewClient(os.Getenv("OPENAI_API_KEY"))
	renderer := pdf.NewRenderer()
	extractor := pdf.NewExtractor()

	// Repositories and queue
	sessionRepo := sessioninfra.NewPostgresSessionRepository(c.DB)
	c.Queue = sessioninfra.NewRedisExtractionQueue(c.Redis, extractionQueueName)

	// Domain Services
	c.SessionService = sessionsrv.NewService(
		sessionRepo,
		c.Catalog,
		c.Normalizer,
		generator,
		renderer,
		extractor,
		c.FileSystem,
		c.Queue,
	)

	// Workers
	workerCount := 2
	if v := os.Getenv("EXTRACTION_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			workerCount = n
		}
	}
	c.ExtractionWorker = worker.NewExtractionWorker(c.SessionService, c.Queue, workerCount)

	// Handlers
	c.SessionHandlers = sessionapi.NewHandlers(c.SessionService)

	// Middleware
	secret := os.Getenv("SERVICE_TOKEN_SECRET")
	if secret == "" {
		logx.Warn("SERVICE_TOKEN_SECRET is not set, using default (unsafe for production)")
		secret = "super-secret-key-please-change-me-in-production"
	}
	c.AuthMiddleware = sessionapi.ServiceTokenMiddleware(secret)
}
