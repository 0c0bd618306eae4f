package v1

import (
	"talento-joven/internal/delivery/http/handler"
	"talento-joven/internal/delivery/http/middleware"
	"talento-joven/internal/usecase"
	"talento-joven/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the constructed usecases the v1 surface is built from.
// The container owns their lifecycles; routing only wires them.
type Deps struct {
	Auth      usecase.AuthUsecase
	CV        usecase.CVUsecase
	Letters   usecase.CoverLetterUsecase
	Export    usecase.ExportUsecase
	Wizard    usecase.WizardUsecase
	Offers    usecase.OfferAdminUsecase
	Companies usecase.CompanyAdminUsecase
	Youth     usecase.YouthAdminUsecase
	Media     usecase.MediaUsecase
	Files     usecase.FilesUsecase

	AuthMw      *middleware.AuthMiddleware
	WS          *ws.Handler
	MaxUploadMB int
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	authHandler := handler.NewAuthHandler(d.Auth)
	cvHandler := handler.NewCVHandler(d.CV, d.Export)
	letterHandler := handler.NewCoverLetterHandler(d.Letters, d.CV, d.Export)
	wizardHandler := handler.NewWizardHandler(d.Wizard)
	offersHandler := handler.NewOffersHandler(d.Offers)
	companiesHandler := handler.NewCompaniesHandler(d.Companies)
	youthHandler := handler.NewYouthHandler(d.Youth)
	mediaHandler := handler.NewMediaHandler(d.Media)
	filesHandler := handler.NewFilesHandler(d.Files, d.MaxUploadMB)

	authHandler.RegisterRoutes(r.Group("/auth"))

	offersHandler.RegisterPublicRoutes(r.Group("/offers"))
	companiesHandler.RegisterPublicRoutes(r.Group("/companies"))
	youthHandler.RegisterPublicRoutes(r.Group("/youth"))
	mediaHandler.RegisterRoutes(r)

	protected := r.Group("", d.AuthMw.Middleware())
	cvHandler.RegisterRoutes(protected.Group("/cv"))
	letterHandler.RegisterRoutes(protected.Group("/cover-letter"))
	wizardHandler.RegisterRoutes(protected.Group("/wizard"))
	filesHandler.RegisterRoutes(protected.Group("/files"))

	admin := r.Group("/admin", d.AuthMw.Middleware(), d.AuthMw.RequireAdmin())
	offersHandler.RegisterAdminRoutes(admin.Group("/offers"))
	companiesHandler.RegisterAdminRoutes(admin.Group("/companies"))
	youthHandler.RegisterAdminRoutes(admin.Group("/youth"))

	if d.WS != nil {
		r.Get("/ws/admin", d.WS.HandleAdminWS, d.AuthMw.Middleware(), d.AuthMw.RequireAdmin())
	}
}
