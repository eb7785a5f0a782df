package server

import (
	"aestheti-qr-server/confs"
	"aestheti-qr-server/db"
	"aestheti-qr-server/handlers"
	httpHandler "aestheti-qr-server/handlers/http"
	"aestheti-qr-server/repositories"
	"aestheti-qr-server/services"
	"aestheti-qr-server/usecases"
	"aestheti-qr-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // SPA runs on a separate dev origin
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	profilePicRepo := repositories.NewProfilePicPgRepository(s.db)
	qrCodeRepo := repositories.NewQRCodePgRepository(s.db)
	generatedImageRepo := repositories.NewGeneratedImagePgRepository(s.db)
	accountRepo := repositories.NewAccountPgRepository(s.db)

	// Initialize use cases
	profilePicUseCase := usecases.NewProfilePicUseCase(profilePicRepo)
	qrCodeUseCase := usecases.NewQRCodeUseCase(qrCodeRepo)

	// Image generation service with prompt cache
	imageGen := services.NewImageGenService(confs.OpenAIAPIKey(), generatedImageRepo)
	imageGen.Start()

	// Websocket manager and library feed handler
	manager := ws.NewManager()
	wsHandler := handlers.NewWSHandler(manager, accountRepo)

	// Initialize handlers
	profilePicHandler := httpHandler.NewProfilePicHandler(profilePicUseCase)
	qrCodeHandler := httpHandler.NewQRCodeHandler(qrCodeUseCase, wsHandler)
	openAIHandler := httpHandler.NewOpenAIHandler(imageGen)

	// Setup API routes
	api := s.app.Group("/api")
	{
		// Profile picture routes
		profilePic := api.Group("/profilepic")
		{
			profilePic.POST("", profilePicHandler.CreateProfilePic)
			profilePic.GET("/:userId", profilePicHandler.GetProfilePic)
			profilePic.PUT("/:userId", profilePicHandler.UpdateProfilePic)
			profilePic.DELETE("/:userId", profilePicHandler.DeleteProfilePic)
		}

		// QR code library routes
		qrcode := api.Group("/qrcode")
		{
			qrcode.POST("/addQrcode", qrCodeHandler.AddQRCode)
			qrcode.GET("/searchQrcode", qrCodeHandler.SearchQRCode)
			qrcode.POST("/getQrcodeAll", qrCodeHandler.GetQRCodeAll)
			qrcode.GET("/connected", wsHandler.GetConnectedAccounts) // live library sessions
		}

		// AI image generation routes
		openai := api.Group("/openai")
		{
			openai.POST("/generate-image", openAIHandler.GenerateImage)
			openai.GET("/download-image", openAIHandler.DownloadImage)
			openai.GET("/cache-stats", openAIHandler.CacheStats)
		}
	}

	s.app.GET("/ws", wsHandler.HandleLibraryWS)

	if err := s.app.Run("0.0.0.0:" + confs.ServerPort()); err != nil {
		panic(err)
	}
}
