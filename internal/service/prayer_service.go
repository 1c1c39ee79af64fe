package service

import (
	"log"

	"github.com/0001fella/abundant-life-sub000/internal/model"
	"github.com/0001fella/abundant-life-sub000/internal/pkg"
	"github.com/0001fella/abundant-life-sub000/internal/repository/mysql"
)

type PrayerService struct {
	repo     *mysql.PrayerRepository
	smtp     pkg.SMTPConfig
	notifyTo string
}

func NewPrayerService(repo *mysql.PrayerRepository, smtp pkg.SMTPConfig, notifyTo string) *PrayerService {
	return &PrayerService{repo: repo, smtp: smtp, notifyTo: notifyTo}
}

// Create stores the request, then notifies the prayer team without holding
// up the response. A mail failure only logs; the request is already saved.
func (s *PrayerService) Create(p *model.PrayerRequest) error {
	if err := s.repo.Create(p); err != nil {
		return err
	}

	if s.smtp.Enabled() && s.notifyTo != "" {
		go func(name, email, request string) {
			html := pkg.PrayerRequestHTML(name, email, request)
			if err := pkg.SendEmail(s.smtp, s.notifyTo, "New prayer request", html); err != nil {
				log.Printf("prayer notification email failed: %v", err)
			}
		}(p.Name, p.Email, p.Request)
	}
	return nil
}

func (s *PrayerService) List() ([]model.PrayerRequest, error) {
	return s.repo.List()
}
