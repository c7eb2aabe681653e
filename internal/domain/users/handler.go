package users

import (
	"net/http"

	"pawfam-api/internal/middleware"
	"pawfam-api/internal/platform/httpx"
	"pawfam-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc, auth.RoleCustomer))
		ar.Post("/vendor/register", registerHandler(svc, auth.RoleVendor))
		ar.Post("/login", loginHandler(svc, ""))
		ar.Post("/vendor/login", loginHandler(svc, auth.RoleVendor))

		ar.Post("/send-reset-otp", sendResetCodeHandler(svc))
		ar.Post("/verify-reset-otp", verifyResetCodeHandler(svc))
		ar.Post("/reset-password", resetPasswordHandler(svc))

		ar.With(middleware.RequireUser).Get("/me", meHandler(svc))
	})
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type resetRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

type userResponse struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     auth.Role `json:"role"`
}

type sessionResponse struct {
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
	Message string       `json:"message"`
}

func registerHandler(svc *Service, role auth.Role) http.HandlerFunc {
	msg := "User registered successfully"
	if role == auth.RoleVendor {
		msg = "Vendor registered successfully"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		sess, err := svc.Register(r.Context(), role, RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toSessionResponse(sess, msg))
	}
}

func loginHandler(svc *Service, requireRole auth.Role) http.HandlerFunc {
	msg := "Login successful"
	if requireRole == auth.RoleVendor {
		msg = "Vendor login successful"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		sess, err := svc.Login(r.Context(), req.Email, req.Password, requireRole)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toSessionResponse(sess, msg))
	}
}

func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		u, err := svc.Me(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"user": toUserResponse(u)})
	}
}

func sendResetCodeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resetRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if err := svc.SendResetCode(r.Context(), req.Email); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "OTP has been sent to your email address",
			"email":   req.Email,
		})
	}
}

func verifyResetCodeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resetRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if err := svc.VerifyResetCode(r.Context(), req.Email, req.OTP); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message":  "OTP verified successfully. You can now reset your password.",
			"verified": true,
		})
	}
}

func resetPasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resetRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if err := svc.ResetPassword(r.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteMessage(w, http.StatusOK, "Password has been reset successfully. You can now login with your new password.")
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

func toSessionResponse(s Session, msg string) sessionResponse {
	return sessionResponse{Token: s.Token, User: toUserResponse(s.User), Message: msg}
}
