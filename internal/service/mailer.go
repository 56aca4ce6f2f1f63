package service

import (
	"fmt"
	"net/smtp"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// MailSender is the delivery transport. The production implementation speaks
// SMTP; tests substitute a recorder.
type MailSender interface {
	Send(to, subject, body string) error
}

type smtpSender struct {
	from     string
	username string
	password string
	host     string
	port     string
}

// NewSMTPSender builds the production transport. The auth username may differ
// from the From address (relay accounts usually do); an empty username falls
// back to from.
func NewSMTPSender(from, username, password, host, port string) MailSender {
	if username == "" {
		username = from
	}
	return &smtpSender{
		from:     from,
		username: username,
		password: password,
		host:     host,
		port:     port,
	}
}

func (s *smtpSender) Send(to, subject, body string) error {
	if s.host == "" || s.port == "" || s.from == "" {
		return fmt.Errorf("missing SMTP configuration")
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n%s\r\n",
		s.from, to, subject, body,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	return smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{to}, msg)
}

type verificationMail struct {
	Email  string
	Token  string
	UserID uint
}

// MailDispatcher owns the asynchronous boundary for verification mail. The
// request path only guarantees enqueue; a background worker delivers with
// bounded retries and exponential backoff. A full queue drops the message
// with a log line rather than blocking the request.
type MailDispatcher interface {
	EnqueueVerification(email, token string, userID uint) bool
	Close()
}

type mailDispatcher struct {
	sender      MailSender
	baseURL     string
	maxAttempts int
	queue       chan verificationMail
	closeOnce   sync.Once
	wg          sync.WaitGroup
}

func NewMailDispatcher(sender MailSender, baseURL string, queueSize, maxAttempts int) MailDispatcher {
	if queueSize <= 0 {
		queueSize = 128
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	d := &mailDispatcher{
		sender:      sender,
		baseURL:     baseURL,
		maxAttempts: maxAttempts,
		queue:       make(chan verificationMail, queueSize),
	}

	d.wg.Add(1)
	go d.worker()

	return d
}

func (d *mailDispatcher) EnqueueVerification(email, token string, userID uint) bool {
	select {
	case d.queue <- verificationMail{Email: email, Token: token, UserID: userID}:
		return true
	default:
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"email":   email,
		}).Warn("mail queue full, dropping verification mail")
		return false
	}
}

func (d *mailDispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *mailDispatcher) worker() {
	defer d.wg.Done()

	for mail := range d.queue {
		d.deliver(mail)
	}
}

func (d *mailDispatcher) deliver(mail verificationMail) {
	link := fmt.Sprintf("%s/api/auth/verify/%s", d.baseURL, mail.Token)
	subject := "Verify Your Email - StaffHub"
	body := fmt.Sprintf(
		"Welcome to StaffHub!\n\n"+
			"Please verify your email by clicking the link below:\n%s\n\n"+
			"If you didn't create this account, please ignore this email.\n",
		link,
	)

	backoff := time.Second
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		err := d.sender.Send(mail.Email, subject, body)
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"user_id": mail.UserID,
				"email":   mail.Email,
				"attempt": attempt,
			}).Info("verification mail sent")
			return
		}

		logrus.WithFields(logrus.Fields{
			"user_id": mail.UserID,
			"email":   mail.Email,
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("verification mail send failed")

		if attempt < d.maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}

	logrus.WithFields(logrus.Fields{
		"user_id": mail.UserID,
		"email":   mail.Email,
	}).Error("verification mail dropped after retries")
}
