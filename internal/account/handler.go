package account

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/minibank/minibank/internal/notification"
	"github.com/minibank/minibank/internal/session"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "session_token"

const (
	dashboardRedirect = "/dashboard.html"
	loginRedirect     = "/login.html"

	unauthorizedMessage = "Unauthorized. Please log in."
)

// Handler exposes the banking endpoints over HTTP. It owns the cookie
// transport for sessions; everything else delegates to the service.
type Handler struct {
	svc        *Service
	sessions   session.Resolver
	notifier   notification.Notifier
	logger     *slog.Logger
	sessionTTL time.Duration
}

// NewHandler constructs the account HTTP handler.
func NewHandler(svc *Service, sessions session.Resolver, notifier notification.Notifier, logger *slog.Logger, sessionTTL time.Duration) *Handler {
	return &Handler{svc: svc, sessions: sessions, notifier: notifier, logger: logger, sessionTTL: sessionTTL}
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	PIN      string `json:"pin"`
}

// Register opens an account and starts a session for it.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	user, err := h.svc.Register(c.UserContext(), RegisterInput{FullName: req.FullName, Phone: req.Phone, PIN: req.PIN})
	if err != nil {
		return h.fail(c, err, "Registration failed. Please try again.")
	}

	if err := h.issueSession(c, user.Phone); err != nil {
		return h.fail(c, err, "Registration failed. Please try again.")
	}

	return c.JSON(fiber.Map{
		"message":  "Registration successful!",
		"redirect": dashboardRedirect,
		"user": fiber.Map{
			"fullName": user.FullName,
			"phone":    user.Phone,
			"balance":  user.Balance,
		},
	})
}

type loginRequest struct {
	Phone string `json:"phone"`
	PIN   string `json:"pin"`
}

// Login verifies credentials and starts a session.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	user, err := h.svc.Authenticate(c.UserContext(), req.Phone, req.PIN)
	if err != nil {
		return h.fail(c, err, "Login failed. Please try again.")
	}

	if err := h.issueSession(c, user.Phone); err != nil {
		return h.fail(c, err, "Login failed. Please try again.")
	}

	return c.JSON(fiber.Map{
		"message":  "Login successful",
		"redirect": dashboardRedirect,
		"user": fiber.Map{
			"fullName": user.FullName,
			"balance":  user.Balance,
		},
	})
}

// Dashboard returns the signed-in user's overview.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	phone := h.currentPhone(c)
	if phone == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": unauthorizedMessage})
	}

	user, err := h.svc.Lookup(c.UserContext(), phone)
	if err != nil {
		return h.fail(c, err, "Server error")
	}

	return c.JSON(fiber.Map{
		"fullName":         user.FullName,
		"balance":          user.Balance,
		"phone":            user.Phone,
		"transactionCount": len(user.Transactions),
	})
}

// Balance returns the signed-in user's balance, raw and formatted.
func (h *Handler) Balance(c *fiber.Ctx) error {
	phone := h.currentPhone(c)
	if phone == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": unauthorizedMessage})
	}

	user, err := h.svc.Lookup(c.UserContext(), phone)
	if err != nil {
		return h.fail(c, err, "Server error")
	}

	return c.JSON(fiber.Map{
		"balance":          user.Balance,
		"formattedBalance": FormatNaira(user.Balance),
	})
}

type transferRequest struct {
	ReceiverName    string      `json:"receiverName"`
	ReceiverAccount string      `json:"receiverAccount"`
	Bank            string      `json:"bank"`
	Amount          AmountField `json:"amount"`
}

// Transfer debits the signed-in user and records the transaction.
func (h *Handler) Transfer(c *fiber.Ctx) error {
	phone := h.currentPhone(c)
	if phone == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": unauthorizedMessage})
	}

	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	user, tx, err := h.svc.Transfer(c.UserContext(), phone, TransferInput{
		ReceiverName:    req.ReceiverName,
		ReceiverAccount: req.ReceiverAccount,
		Bank:            req.Bank,
		Amount:          req.Amount,
	})
	if err != nil {
		return h.fail(c, err, "Transfer failed. Please try again.")
	}

	if h.notifier != nil {
		event := notification.TransferEvent{
			SenderPhone: user.Phone,
			Receiver:    tx.Receiver,
			Bank:        tx.Bank,
			Account:     tx.Account,
			Amount:      tx.Amount,
			NewBalance:  user.Balance,
			Timestamp:   tx.Timestamp,
		}
		if err := h.notifier.Send(c.UserContext(), event); err != nil {
			h.logger.Warn("transfer notification failed", "error", err)
		}
	}

	return c.JSON(fiber.Map{
		"message":          "Transfer successful",
		"newBalance":       user.Balance,
		"formattedBalance": FormatNaira(user.Balance),
		"transaction":      tx,
	})
}

// History returns the signed-in user's full transaction sequence in
// chronological order.
func (h *Handler) History(c *fiber.Ctx) error {
	phone := h.currentPhone(c)
	if phone == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": unauthorizedMessage})
	}

	user, err := h.svc.Lookup(c.UserContext(), phone)
	if err != nil {
		return h.fail(c, err, "Server error")
	}

	transactions := user.Transactions
	if transactions == nil {
		transactions = []Transaction{}
	}

	return c.JSON(fiber.Map{
		"transactions":      transactions,
		"totalTransactions": len(transactions),
		"user": fiber.Map{
			"fullName": user.FullName,
			"balance":  user.Balance,
		},
	})
}

// Logout ends the current session unconditionally.
func (h *Handler) Logout(c *fiber.Ctx) error {
	h.clearSession(c)
	return c.JSON(fiber.Map{
		"message":  "Logged out successfully",
		"redirect": loginRedirect,
	})
}

// CheckSession reports whether a valid session exists. It never fails:
// every failure path degrades to loggedIn=false, and a session whose
// phone no longer resolves to a record is cleared as stale.
func (h *Handler) CheckSession(c *fiber.Ctx) error {
	phone := h.currentPhone(c)
	if phone == "" {
		return c.JSON(fiber.Map{"loggedIn": false})
	}

	user, err := h.svc.Lookup(c.UserContext(), phone)
	if err != nil {
		var notFound NotFoundError
		if errors.As(err, &notFound) {
			h.clearSession(c)
		} else {
			h.logger.Warn("session check lookup failed", "error", err)
		}
		return c.JSON(fiber.Map{"loggedIn": false})
	}

	return c.JSON(fiber.Map{
		"loggedIn": true,
		"user": fiber.Map{
			"fullName": user.FullName,
			"phone":    user.Phone,
			"balance":  user.Balance,
		},
	})
}

func (h *Handler) issueSession(c *fiber.Ctx, phone string) error {
	token, err := h.sessions.Issue(c.UserContext(), phone)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		MaxAge:   int(h.sessionTTL.Seconds()),
		Expires:  time.Now().Add(h.sessionTTL),
	})
	return nil
}

func (h *Handler) clearSession(c *fiber.Ctx) {
	if token := c.Cookies(SessionCookie); token != "" {
		if err := h.sessions.Clear(c.UserContext(), token); err != nil {
			h.logger.Warn("clear session failed", "error", err)
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

// currentPhone resolves the request's session cookie to a phone number,
// or returns the empty string when there is no usable session.
func (h *Handler) currentPhone(c *fiber.Ctx) string {
	token := c.Cookies(SessionCookie)
	if token == "" {
		return ""
	}
	phone, err := h.sessions.Resolve(c.UserContext(), token)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			h.logger.Warn("session resolve failed", "error", err)
		}
		return ""
	}
	return phone
}

// fail maps a service error to the HTTP response contract: business
// failures are 400 with the rule's message, anything unexpected is 500
// with a route-specific fallback message and no internal detail.
func (h *Handler) fail(c *fiber.Ctx, err error, fallback string) error {
	var (
		validation   ValidationError
		conflict     ConflictError
		auth         AuthError
		notFound     NotFoundError
		policy       PolicyError
		insufficient InsufficientFundsError
	)
	switch {
	case errors.As(err, &validation):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": validation.Message})
	case errors.As(err, &conflict):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": conflict.Message})
	case errors.As(err, &auth):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": auth.Message})
	case errors.As(err, &notFound):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": notFound.Message})
	case errors.As(err, &policy):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message":        policy.Message,
			"requiredAmount": policy.RequiredAmount,
		})
	case errors.As(err, &insufficient):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message":         insufficient.Error(),
			"depositRedirect": dashboardRedirect,
			"currentBalance":  insufficient.CurrentBalance,
			"requiredAmount":  insufficient.RequiredAmount,
		})
	default:
		h.logger.Error("request failed", "path", c.Path(), "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": fallback})
	}
}
