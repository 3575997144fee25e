package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/afume/internal/config"
	"github.com/example/afume/internal/dao"
	"github.com/example/afume/internal/handlers"
	"github.com/example/afume/internal/middleware"
	"github.com/example/afume/internal/services"
	"github.com/example/afume/internal/utils"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	tokens := utils.NewTokenCodec(cfg.JWTSecret, cfg.TokenIssuer, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	userDAO := dao.NewUserDAO(db)
	perfumeDAO := dao.NewPerfumeDAO(db)
	seriesDAO := dao.NewSeriesDAO(db)
	brandDAO := dao.NewBrandDAO(db)
	ingredientDAO := dao.NewIngredientDAO(db)
	reviewDAO := dao.NewReviewDAO(db)
	defaultReviewDAO := dao.NewDefaultReviewDAO(db)
	likeDAO := dao.NewLikeDAO(db)

	authHandler := handlers.NewAuthHandler(services.NewUserService(userDAO, tokens))
	perfumeHandler := handlers.NewPerfumeHandler(services.NewPerfumeService(perfumeDAO, defaultReviewDAO, likeDAO))
	catalogHandler := handlers.NewCatalogHandler(services.NewSeriesService(seriesDAO), services.NewBrandService(brandDAO))
	ingredientHandler := handlers.NewIngredientHandler(services.NewIngredientService(ingredientDAO, seriesDAO))
	reviewHandler := handlers.NewReviewHandler(services.NewReviewService(reviewDAO, likeDAO, defaultReviewDAO))

	authRequired := middleware.AuthMiddleware(tokens)
	adminRequired := middleware.AdminMiddleware()

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/reissue", authHandler.Reissue)
	auth.Get("/validate-email", authHandler.ValidateEmail)
	auth.Get("/validate-nickname", authHandler.ValidateNickname)

	// Catalog lookups
	series := api.Group("/series")
	series.Get("/", catalogHandler.ListSeries)
	series.Get("/:id", catalogHandler.GetSeries)
	series.Post("/", authRequired, adminRequired, catalogHandler.CreateSeries)
	series.Put("/:id", authRequired, adminRequired, catalogHandler.UpdateSeries)
	series.Delete("/:id", authRequired, adminRequired, catalogHandler.DeleteSeries)

	brands := api.Group("/brands")
	brands.Get("/", catalogHandler.ListBrands)
	brands.Get("/:id", catalogHandler.GetBrand)
	brands.Post("/", authRequired, adminRequired, catalogHandler.CreateBrand)
	brands.Put("/:id", authRequired, adminRequired, catalogHandler.UpdateBrand)
	brands.Delete("/:id", authRequired, adminRequired, catalogHandler.DeleteBrand)

	ingredients := api.Group("/ingredients")
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/search", ingredientHandler.Search)
	ingredients.Get("/:id", ingredientHandler.Get)
	ingredients.Post("/", authRequired, adminRequired, ingredientHandler.Create)
	ingredients.Put("/:id", authRequired, adminRequired, ingredientHandler.Update)
	ingredients.Delete("/:id", authRequired, adminRequired, ingredientHandler.Delete)

	// Perfumes
	perfumes := api.Group("/perfumes")
	perfumes.Get("/", perfumeHandler.Search)
	perfumes.Get("/:id", perfumeHandler.Get)
	perfumes.Post("/", authRequired, adminRequired, perfumeHandler.Create)
	perfumes.Put("/:id", authRequired, adminRequired, perfumeHandler.Update)
	perfumes.Delete("/:id", authRequired, adminRequired, perfumeHandler.Delete)

	perfumes.Post("/:id/like", authRequired, perfumeHandler.Like)
	perfumes.Delete("/:id/like", authRequired, perfumeHandler.Unlike)

	perfumes.Get("/:id/reviews", reviewHandler.ListOfPerfume)
	perfumes.Post("/:id/reviews", authRequired, reviewHandler.Post)

	// Reviews
	reviews := api.Group("/reviews")
	reviews.Get("/mine", authRequired, reviewHandler.ListMine)
	reviews.Get("/:id", reviewHandler.Get)
	reviews.Put("/:id", authRequired, reviewHandler.Update)
	reviews.Delete("/:id", authRequired, reviewHandler.Delete)
	reviews.Post("/:id/like", authRequired, reviewHandler.Like)
	reviews.Delete("/:id/like", authRequired, reviewHandler.Unlike)

	// Profile
	profile := api.Group("/profile", authRequired)
	profile.Get("/", authHandler.GetProfile)
	profile.Put("/", authHandler.UpdateProfile)
	profile.Put("/password", authHandler.ChangePassword)
	profile.Delete("/", authHandler.DeleteAccount)
	profile.Get("/wishlist", perfumeHandler.Wishlist)
	profile.Post("/wishlist/:id", perfumeHandler.AddToWishlist)
	profile.Delete("/wishlist/:id", perfumeHandler.RemoveFromWishlist)
}
