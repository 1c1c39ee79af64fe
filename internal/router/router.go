package router

import (
	"net/http"
	"time"

	"github.com/0001fella/abundant-life-sub000/internal/config"
	"github.com/0001fella/abundant-life-sub000/internal/handler"
	"github.com/0001fella/abundant-life-sub000/internal/middleware"
	"github.com/0001fella/abundant-life-sub000/internal/pkg"
	"github.com/0001fella/abundant-life-sub000/internal/repository/mysql"
	"github.com/0001fella/abundant-life-sub000/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SubmissionWindow is how long an anonymous client waits between
// testimonial or prayer submissions.
const SubmissionWindow = 15 * time.Minute

// knownPrefixes is what the JSON 404 advertises for unmatched /api routes.
var knownPrefixes = []string{
	"/api/auth", "/api/users", "/api/sermons", "/api/events",
	"/api/devotionals", "/api/testimonials", "/api/donations",
	"/api/prayers", "/api/members", "/api/resources", "/api/health",
}

// Deps carries everything the route tree needs, so tests can swap the
// database and the shared stores.
type Deps struct {
	Cfg                *config.Config
	DB                 *gorm.DB
	Tokens             middleware.TokenStore
	TestimonialLimiter middleware.Counter
	PrayerLimiter      middleware.Counter
	SMTP               pkg.SMTPConfig
}

func InitRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery(d.Cfg.Production()))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{d.Cfg.FrontendURL}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	users := mysql.NewUserRepository(d.DB)
	userSvc := service.NewUserService(users, d.Tokens)
	prayerSvc := service.NewPrayerService(mysql.NewPrayerRepository(d.DB), d.SMTP, d.Cfg.PrayerNotify)

	auth := handler.NewAuthHandler(userSvc)
	user := handler.NewUserHandler(userSvc)
	sermon := handler.NewSermonHandler(mysql.NewSermonRepository(d.DB))
	event := handler.NewEventHandler(mysql.NewEventRepository(d.DB), d.Cfg.UploadDir)
	devotional := handler.NewDevotionalHandler(mysql.NewDevotionalRepository(d.DB))
	testimonial := handler.NewTestimonialHandler(mysql.NewTestimonialRepository(d.DB))
	donation := handler.NewDonationHandler(mysql.NewDonationRepository(d.DB))
	prayer := handler.NewPrayerHandler(prayerSvc)
	member := handler.NewMemberHandler(mysql.NewMemberRepository(d.DB))
	resource := handler.NewResourceHandler(mysql.NewResourceRepository(d.DB))
	health := handler.NewHealthHandler(d.DB)

	authRequired := middleware.AuthRequired(users, d.Tokens)
	adminRequired := middleware.AdminRequired()

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", auth.Register)
			authGroup.POST("/login", auth.Login)
			authGroup.POST("/logout", authRequired, auth.Logout)
			authGroup.GET("/profile", authRequired, auth.Profile)
		}

		api.PUT("/users/me/profile", authRequired, user.UpdateProfile)

		sermons := api.Group("/sermons")
		{
			sermons.GET("", sermon.List)
			sermons.POST("/:id/like", sermon.Like)
			sermons.POST("/:id/view", sermon.View)
			sermons.POST("", authRequired, adminRequired, sermon.Create)
			sermons.PUT("/:id", authRequired, adminRequired, sermon.Update)
			sermons.DELETE("/:id", authRequired, adminRequired, sermon.Delete)
		}

		events := api.Group("/events")
		{
			events.GET("", event.List)
			events.POST("", authRequired, adminRequired, event.Create)
			events.PUT("/:id", authRequired, adminRequired, event.Update)
			events.DELETE("/:id", authRequired, adminRequired, event.Delete)
		}

		devotionals := api.Group("/devotionals")
		{
			devotionals.GET("", devotional.List)
			devotionals.POST("", authRequired, adminRequired, devotional.Create)
			devotionals.PUT("/:id", authRequired, adminRequired, devotional.Update)
			devotionals.DELETE("/:id", authRequired, adminRequired, devotional.Delete)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", testimonial.List)
			testimonials.POST("",
				middleware.RateLimit(d.TestimonialLimiter, SubmissionWindow,
					"you can only share one testimonial every 15 minutes"),
				testimonial.Create)
		}

		donations := api.Group("/donations")
		{
			donations.GET("", donation.List)
			donations.POST("", donation.Create)
			donations.PUT("/:id", authRequired, adminRequired, donation.Update)
			donations.DELETE("/:id", authRequired, adminRequired, donation.Delete)
		}

		prayers := api.Group("/prayers")
		{
			prayers.GET("", prayer.List)
			prayers.POST("",
				middleware.RateLimit(d.PrayerLimiter, SubmissionWindow,
					"you can only send one prayer request every 15 minutes"),
				prayer.Create)
		}

		members := api.Group("/members")
		{
			members.GET("", member.List)
			members.POST("", authRequired, adminRequired, member.Create)
			members.PUT("/:id", authRequired, adminRequired, member.Update)
			members.DELETE("/:id", authRequired, adminRequired, member.Delete)
		}

		resources := api.Group("/resources")
		{
			resources.GET("", resource.List)
			resources.POST("", authRequired, adminRequired, resource.Create)
			resources.PUT("/:id", authRequired, adminRequired, resource.Update)
			resources.DELETE("/:id", authRequired, adminRequired, resource.Delete)
		}

		api.GET("/health", health.Check)
	}

	r.Static("/uploads", d.Cfg.UploadDir)
	r.Static("/sermons", d.Cfg.SermonDir)
	r.Static("/resources", d.Cfg.ResourceDir)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "route not found",
			"routes": knownPrefixes,
		})
	})

	return r
}
