package v1

import (
	"log/slog"
	"net/http"

	"go-screening-backend/internal/delivery/http/middleware"
	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/internal/domain"
	"go-screening-backend/internal/usecase"
	"go-screening-backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	// MaxJSONBodySize bounds every JSON request body.
	MaxJSONBodySize int64 = 1 << 20
	// MaxCVRequestSize leaves room for multipart framing around a 5 MiB file.
	MaxCVRequestSize int64 = domain.MaxCVSize + 64<<10
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	QuestionUC  domain.QuestionUsecase
	AnswerUC    domain.AnswerUsecase
	VideoUC     domain.VideoUsecase
	CVUC        domain.CVUsecase
	DirectoryUC domain.DirectoryUsecase
	UserUC      domain.UserUsecase
	HealthUC    usecase.HealthUsecase

	Tokens  middleware.TokenParser
	Auditor security.Auditor
	Logger  *slog.Logger

	RequireAuth        bool
	ExposeErrorDetails bool
	CORSAllowedOrigins []string
	StrictTransport    bool
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.CORSAllowedOrigins)) // CORS must be first!
	r.Use(middleware.Recovery(deps.ExposeErrorDetails))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.SecurityHeadersMiddleware(deps.StrictTransport))
	r.Use(middleware.ErrorHandler(deps.ExposeErrorDetails))

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, deps.HealthUC.Check(c.Request.Context()))
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authMW := middleware.AuthMiddleware(deps.Tokens, deps.Auditor, deps.RequireAuth)
	jsonLimit := middleware.BodySizeLimiter(MaxJSONBodySize)

	public := api.Group("", jsonLimit)
	protected := api.Group("", jsonLimit, authMW)
	recruiter := protected.Group("", middleware.RequireRole(deps.RequireAuth, domain.RoleRecruiter))
	upload := api.Group("", middleware.BodySizeLimiter(MaxCVRequestSize), authMW)
	{
		NewAuthHandler(public, deps.AuthUC)
		NewQuestionHandler(protected, recruiter, deps.QuestionUC)
		NewAnswerHandler(protected, deps.AnswerUC)
		NewVideoHandler(protected, deps.VideoUC)
		NewCVHandler(protected, upload, &r.RouterGroup, deps.CVUC)
		NewDirectoryHandler(recruiter, deps.DirectoryUC)
		NewUserHandler(recruiter, deps.UserUC)
	}

	return r
}
