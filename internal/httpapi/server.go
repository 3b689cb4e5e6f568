package httpapi

import (
	"net/http"
	"time"

	"enertek-backend-go/internal/config"
	"enertek-backend-go/internal/services"
	"enertek-backend-go/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	DB         *sqlx.DB
	Config     config.Config
	Tokens     services.TokenService
	MetricsHub *services.MetricsHub

	validate *validator.Validate
	uploader *services.Uploader

	categories      *services.CategoryService
	products        *services.ProductService
	news            *services.NewsService
	solutions       *services.SolutionService
	pages           *services.PageService
	slides          *services.SlideService
	docs            *services.TechnicalDocService
	otherCategories *services.OtherCategoryService
	users           *services.UserService
	contacts        *services.ContactService
	company         *services.CompanyService
}

func NewServer(db *sqlx.DB, cfg config.Config, hub *services.MetricsHub) *Server {
	tokens := services.TokenService{
		Secret:   []byte(cfg.JWTSecret),
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      time.Duration(cfg.TokenTTLSeconds) * time.Second,
	}
	st := store.New(db)
	mailer := services.NewMailer(cfg)
	return &Server{
		DB:              db,
		Config:          cfg,
		Tokens:          tokens,
		MetricsHub:      hub,
		validate:        validator.New(),
		uploader:        services.NewUploader(cfg.UploadRoot, cfg.MaxUploadBytes),
		categories:      services.NewCategoryService(st),
		products:        services.NewProductService(st),
		news:            services.NewNewsService(st),
		solutions:       services.NewSolutionService(st),
		pages:           services.NewPageService(st),
		slides:          services.NewSlideService(st),
		docs:            services.NewTechnicalDocService(st),
		otherCategories: services.NewOtherCategoryService(st),
		users:           services.NewUserService(st, tokens),
		contacts:        services.NewContactService(st, mailer),
		company:         services.NewCompanyService(st),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	admin := []func(http.Handler) http.Handler{WithAuth(s.Tokens), RequireAdmin()}

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", s.Register)
		api.Post("/auth/login", s.Login)
		api.With(WithAuth(s.Tokens)).Post("/auth/change-password", s.ChangePassword)

		api.Route("/categories", func(cr chi.Router) {
			cr.Get("/", s.ListCategories)
			cr.Get("/all/{limit}", s.ListCategories)
			cr.Get("/{id}", s.GetCategory)
			cr.Get("/{id}/products", s.ListProductsByCategory)
			cr.With(admin...).Post("/", s.CreateCategory)
			cr.With(admin...).Put("/{id}", s.UpdateCategory)
			cr.With(admin...).Delete("/{id}", s.DeleteCategory)
		})

		api.Route("/products", func(pr chi.Router) {
			pr.Get("/", s.ListProducts)
			pr.Get("/all/{limit}", s.ListProducts)
			pr.Get("/{id}", s.GetProduct)
			pr.With(admin...).Post("/", s.CreateProduct)
			pr.With(admin...).Put("/{id}", s.UpdateProduct)
			pr.With(admin...).Delete("/{id}", s.DeleteProduct)
			pr.With(admin...).Post("/{id}/photos", s.UploadProductPhoto)
			pr.With(admin...).Delete("/photos", s.DeletePhotoByURL)
		})

		api.Route("/news", func(nr chi.Router) {
			nr.Get("/", s.ListNews)
			nr.Get("/all/{limit}", s.ListNews)
			nr.Get("/{id}", s.GetNews)
			nr.With(admin...).Post("/", s.CreateNews)
			nr.With(admin...).Put("/{id}", s.UpdateNews)
			nr.With(admin...).Delete("/{id}", s.DeleteNews)
			nr.With(admin...).Post("/{id}/photos", s.UploadNewsPhoto)
		})

		api.Route("/solutions", func(sr chi.Router) {
			sr.Get("/", s.ListSolutions)
			sr.Get("/all/{limit}", s.ListSolutions)
			sr.Get("/{id}", s.GetSolution)
			sr.With(admin...).Post("/", s.CreateSolution)
			sr.With(admin...).Put("/{id}", s.UpdateSolution)
			sr.With(admin...).Delete("/{id}", s.DeleteSolution)
			sr.With(admin...).Post("/{id}/products", s.AddSolutionProduct)
			sr.With(admin...).Delete("/{id}/products/{productId}", s.RemoveSolutionProduct)
			sr.With(admin...).Post("/{id}/photos", s.UploadSolutionPhoto)
			sr.With(admin...).Post("/{id}/main-picture", s.UploadSolutionMainPicture)
		})

		api.Route("/pages", func(pr chi.Router) {
			pr.Get("/", s.ListPages)
			pr.Get("/{id}", s.GetPage)
			pr.Get("/slug/{slug}", s.GetPageBySlug)
			pr.Post("/{id}/visit", s.RecordPageVisit)
			pr.With(admin...).Post("/", s.CreatePage)
			pr.With(admin...).Put("/{id}", s.UpdatePage)
			pr.With(admin...).Delete("/{id}", s.DeletePage)
			pr.With(admin...).Post("/upload", s.UploadPageAsset)
		})

		api.Route("/slides", func(sr chi.Router) {
			sr.Get("/", s.ListSlides)
			sr.Get("/{id}", s.GetSlide)
			sr.With(admin...).Post("/", s.CreateSlide)
			sr.With(admin...).Put("/{id}", s.UpdateSlide)
			sr.With(admin...).Delete("/{id}", s.DeleteSlide)
			sr.With(admin...).Post("/{id}/picture", s.UploadSlidePicture)
		})

		api.Route("/technical-docs", func(tr chi.Router) {
			tr.Get("/", s.ListTechnicalDocs)
			tr.Get("/categories", s.ListDocCategories)
			tr.Get("/{id}", s.GetTechnicalDoc)
			tr.With(admin...).Post("/", s.CreateTechnicalDoc)
			tr.With(admin...).Put("/{id}", s.UpdateTechnicalDoc)
			tr.With(admin...).Delete("/{id}", s.DeleteTechnicalDoc)
			tr.With(admin...).Post("/{id}/file", s.UploadTechnicalDocFile)
		})

		api.Route("/other-categories", func(or chi.Router) {
			or.Get("/{type}", s.ListOtherCategories)
			or.Get("/{type}/{id}", s.GetOtherCategory)
			or.With(admin...).Post("/", s.CreateOtherCategory)
			or.With(admin...).Put("/{type}/{id}", s.UpdateOtherCategory)
			or.With(admin...).Delete("/{type}/{id}", s.DeleteOtherCategory)
		})

		api.Route("/users", func(ur chi.Router) {
			ur.Use(admin...)
			ur.Get("/", s.ListUsers)
			ur.Get("/roles", s.ListRoles)
			ur.Get("/{id}", s.GetUser)
			ur.Put("/{id}", s.UpdateUser)
			ur.Delete("/{id}", s.DeleteUser)
		})

		api.Route("/contact", func(cr chi.Router) {
			cr.Post("/", s.CreateContactMessage)
			cr.With(admin...).Get("/", s.ListContactMessages)
			cr.With(admin...).Get("/{id}", s.GetContactMessage)
			cr.With(admin...).Put("/{id}", s.UpdateContactMessage)
			cr.With(admin...).Delete("/{id}", s.DeleteContactMessage)
		})

		api.Route("/company", func(cr chi.Router) {
			cr.Get("/", s.GetCompany)
			cr.With(admin...).Get("/all", s.ListCompany)
			cr.With(admin...).Post("/", s.CreateCompany)
			cr.With(admin...).Put("/{id}", s.UpdateCompany)
			cr.With(admin...).Delete("/{id}", s.DeleteCompany)
		})

		api.With(admin...).Get("/admin/metrics/history", s.MetricsHistory)
	})

	r.Get("/ws/metrics", s.MetricsSocket)

	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.Config.UploadRoot)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})
	return r
}
