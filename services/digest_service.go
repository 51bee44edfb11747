// services/digest_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"poolcare-backend/models"
	"poolcare-backend/schedule"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// DigestService texts each technician a morning summary of customers whose
// scheduled day already passed this week without a service log.
type DigestService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewDigestService(db *gorm.DB) *DigestService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &DigestService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *DigestService) StartScheduler() {
	c := cron.New()

	// Weekday mornings at 7 AM; weekends have no route to miss
	c.AddFunc("0 7 * * 1-5", func() {
		s.SendMissedServiceDigests(time.Now())
	})

	c.Start()
	log.Println("Missed-service digest scheduler started")
}

// SendMissedServiceDigests runs the digest for every active technician.
func (s *DigestService) SendMissedServiceDigests(now time.Time) {
	log.Println("Starting missed-service digest processing...")

	var users []models.User
	if err := s.db.Find(&users, "is_active = ?", true).Error; err != nil {
		log.Printf("Failed to fetch technicians: %v", err)
		return
	}

	for _, user := range users {
		if _, err := s.SendUserDigest(user, now); err != nil {
			log.Printf("Technician %s: digest failed: %v", user.ID, err)
		}
	}

	log.Println("Missed-service digest processing completed")
}

// SendUserDigest computes one technician's missed-service list and, when it
// is non-empty, texts a summary. Returns the number of missed customers.
func (s *DigestService) SendUserDigest(user models.User, now time.Time) (int, error) {
	var customers []models.Customer
	if err := s.db.Where("created_by = ?", user.Email).
		Order("created_at ASC").Find(&customers).Error; err != nil {
		return 0, err
	}

	// Recent logs are enough: the scan only looks inside the current week
	var logs []models.ServiceLog
	if err := s.db.Order("service_date DESC").Limit(500).Find(&logs).Error; err != nil {
		return 0, err
	}

	missed := schedule.MissedServices(customers, logs, now)
	if len(missed) == 0 {
		return 0, nil
	}

	message := composeDigest(missed)

	if user.Phone == "" {
		log.Printf("Technician %s has no phone, skipping digest send", user.ID)
		return len(missed), nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(user.Phone)
	params.SetBody(message)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send digest to %s: %v", user.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Digest sent to %s, SID: %s", user.Phone, *resp.Sid)
	} else {
		log.Printf("Digest sent to %s, but no SID returned", user.Phone)
	}

	digestLog := models.DigestLog{
		UserID:       user.ID,
		MissedCount:  len(missed),
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&digestLog).Error; err != nil {
		log.Printf("Failed to log digest for technician %s: %v", user.ID, err)
	}

	return len(missed), nil
}

func composeDigest(missed []schedule.MissedService) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d customer(s) missed their scheduled service this week:\n", len(missed))
	for _, m := range missed {
		fmt.Fprintf(&b, "- %s (%s, %s)\n", m.Customer.FullName, m.ScheduledDay, m.Customer.Address)
	}
	b.WriteString("Open the route screen to service them now.")
	return b.String()
}
