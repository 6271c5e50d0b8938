package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"court_track_app_go/models"

	"gorm.io/gorm"
)

// SendCaseReminder records a reminder attempt against a case and delegates
// delivery to the mailer.
//
// The reminder record is appended and the case counters are updated before
// delivery is attempted. When delivery fails the record is marked failed and
// a TransportError is returned, but the counters are not rolled back unless
// compensate is set: the default matches the long-standing behavior that
// counters can include reminders that never delivered.
func SendCaseReminder(dbConn *gorm.DB, mailer Mailer, caseID, email string, compensate bool) (string, *SendResult, error) {
	var caseData models.Case
	if err := dbConn.First(&caseData, "id = ?", caseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, &NotFoundError{Resource: "case"}
		}
		return "", nil, &StoreError{Op: "find case", Err: err}
	}

	// Recorded before the delivery attempt with the outcome still open
	reminder := &models.EmailReminder{
		CaseID: caseID,
		Email:  email,
		Status: models.ReminderStatusPending,
	}
	if err := dbConn.Create(reminder).Error; err != nil {
		return "", nil, &StoreError{Op: "record reminder", Err: err}
	}

	now := time.Now()
	if err := dbConn.Model(&models.Case{}).Where("id = ?", caseID).
		Updates(map[string]interface{}{
			"reminder_sent":       true,
			"reminder_sent_count": gorm.Expr("reminder_sent_count + 1"),
			"last_reminder_sent":  now,
		}).Error; err != nil {
		return "", nil, &StoreError{Op: "update reminder counters", Err: err}
	}

	subject, html := buildReminderEmail(&caseData)

	result, err := mailer.Send(email, subject, html)
	if err != nil {
		if updErr := dbConn.Model(reminder).
			Update("status", models.ReminderStatusFailed).Error; updErr != nil {
			log.Printf("Failed to mark reminder %s as failed: %v", reminder.ID, updErr)
		}
		if compensate {
			if compErr := dbConn.Model(&models.Case{}).Where("id = ?", caseID).
				Update("reminder_sent_count", gorm.Expr("reminder_sent_count - 1")).Error; compErr != nil {
				log.Printf("Failed to compensate reminder counter for case %s: %v", caseID, compErr)
			}
		}
		return reminder.ID, nil, err
	}

	if updErr := dbConn.Model(reminder).
		Update("status", models.ReminderStatusSent).Error; updErr != nil {
		log.Printf("Failed to mark reminder %s as sent: %v", reminder.ID, updErr)
	}

	log.Printf("Email reminder sent for case %s to %s messageId=%s", caseID, email, result.MessageID)
	return reminder.ID, result, nil
}

// ListCaseReminders returns the reminder log for a case, newest first.
func ListCaseReminders(dbConn *gorm.DB, caseID string) ([]models.EmailReminder, error) {
	var reminders []models.EmailReminder
	if err := dbConn.Where("case_id = ?", caseID).
		Order("sent_at DESC").
		Find(&reminders).Error; err != nil {
		return nil, &StoreError{Op: "fetch reminders", Err: err}
	}
	return reminders, nil
}

func buildReminderEmail(c *models.Case) (subject, html string) {
	caseRef := c.ID
	caseNumber := "N/A"
	if c.CaseNumber != nil && *c.CaseNumber != "" {
		caseRef = *c.CaseNumber
		caseNumber = *c.CaseNumber
	}

	filingDate := "N/A"
	if !c.FilingDate.IsZero() {
		filingDate = c.FilingDate.Format("02/01/2006")
	}

	subject = fmt.Sprintf("Reminder: Action Required for Case %s", caseRef)
	html = fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; line-height: 1.5;">
        <p>Dear Department,</p>
        <p>This is a reminder regarding the following case:</p>
        <ul>
          <li><strong>Case Number:</strong> %s</li>
          <li><strong>Petitioner:</strong> %s</li>
          <li><strong>Respondent:</strong> %s</li>
          <li><strong>Filing Date:</strong> %s</li>
          <li><strong>Status:</strong> %s</li>
        </ul>
        <p>Please review and take the necessary action.</p>
        <p>Regards,<br/>District Magistrate Office</p>
      </div>
    `, caseNumber, c.PetitionerName, c.RespondentName, filingDate, c.Status)
	return subject, html
}
