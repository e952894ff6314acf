package admin

import (
	"net/http"
	"time"

	"santix-backoffice/database"
	"santix-backoffice/internal/api/httpx"
	"santix-backoffice/internal/domain/movies"
	"santix-backoffice/internal/domain/orders"
	"santix-backoffice/internal/domain/payments"
	"santix-backoffice/internal/domain/showtimes"
	"santix-backoffice/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type stats struct {
	TotalMovies    int64 `json:"totalMovies"`
	TotalShowtimes int64 `json:"totalShowtimes"`
	TotalOrders    int64 `json:"totalOrders"`
	TotalUsers     int64 `json:"totalUsers"`
	TotalRevenue   int64 `json:"totalRevenue"`
	RecentRevenue  int64 `json:"recentRevenue"`
}

// GET /admin/stats
func GetStats(c *gin.Context) {
	var s stats

	database.DB.Model(&movies.Movie{}).Count(&s.TotalMovies)
	database.DB.Model(&showtimes.Showtime{}).Count(&s.TotalShowtimes)
	database.DB.Model(&orders.Order{}).Count(&s.TotalOrders)
	database.DB.Model(&users.User{}).Count(&s.TotalUsers)

	if err := database.DB.Model(&payments.Payment{}).
		Where("status = ?", payments.StatusPaid).
		Select("COALESCE(SUM(amount), 0)").Scan(&s.TotalRevenue).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	if err := database.DB.Model(&payments.Payment{}).
		Where("status = ? AND paid_at >= ?", payments.StatusPaid, thirtyDaysAgo).
		Select("COALESCE(SUM(amount), 0)").Scan(&s.RecentRevenue).Error; err != nil {
		httpx.Error(c, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	httpx.OK(c, http.StatusOK, s)
}
