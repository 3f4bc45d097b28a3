package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/mylxsw/voice-gen-mcp/application/services"
	"github.com/mylxsw/voice-gen-mcp/config"
	"github.com/mylxsw/voice-gen-mcp/infrastructure/adapters"
	"github.com/mylxsw/voice-gen-mcp/infrastructure/mcp_interface/controllers"
	"github.com/mylxsw/voice-gen-mcp/middleware"
)

const (
	serverName    = "voice-gen"
	serverVersion = "1.0.0"

	workerPoolSize = 120
)

func main() {
	// Best-effort, matching dotenv semantics: a missing .env file is fine.
	_ = godotenv.Load()

	minimaxConfig, err := config.GetMinimaxConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get minimax config")
	}

	audioConfig, err := config.GetAudioConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get audio config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	authConfig, err := config.NewAuthConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get auth config")
	}

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(workerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(s3Config.Region),
		Endpoint:    aws.String(s3Config.Endpoint),
		Credentials: credentials.NewStaticCredentials(s3Config.AccessKeyID, s3Config.SecretAccessKey, ""),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create aws session")
	}

	s3Client := s3.New(sess)

	contentFetcher := adapters.NewContentFetcher(time.Duration(minimaxConfig.TimeoutSeconds)*time.Second, zeroLogger)

	audioGenerator := adapters.NewMinimaxAudioGenerator(contentFetcher, minimaxConfig, audioConfig, zeroLogger)

	mediaStore := adapters.NewS3MediaStore(s3Client, s3Config, zeroLogger)

	voiceService := services.NewVoiceService(zeroLogger, audioGenerator, mediaStore)

	authGate := middleware.NewAPIKeyGate(zeroLogger, authConfig)
	if authConfig.Enabled {
		zeroLogger.Info("Authentication is enabled")
	} else {
		zeroLogger.Info("Authentication is disabled")
	}

	voiceController := controllers.NewVoiceController(zeroLogger, workerPool, voiceService, authGate)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	voiceController.RegisterTools(server)

	switch serverConfig.Transport {
	case config.TransportHTTP:
		runHTTP(serverConfig, mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return server
		}, nil))
	case config.TransportSSE:
		runHTTP(serverConfig, mcp.NewSSEHandler(func(*http.Request) *mcp.Server {
			return server
		}, nil))
	default:
		zeroLogger.Info("Starting MCP server in STDIO mode")
		if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			log.Fatal().Err(err).Msg("Failed to serve MCP over stdio")
		}
	}
}

func runHTTP(serverConfig *config.ServerConfig, handler http.Handler) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies")
	}

	router.Use(middleware.RequestContextMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.Any("/mcp", gin.WrapH(handler))
	router.Any("/mcp/*path", gin.WrapH(handler))

	addr := fmt.Sprintf("%s:%d", serverConfig.Host, serverConfig.Port)
	log.Info().Str("addr", addr).Str("transport", serverConfig.Transport).Msg("Starting MCP server over HTTP")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
