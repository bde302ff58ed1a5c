package http

import (
	"encoding/json"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	ReferredBy  string `json:"referredBy"`
}

type loginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	SecretKey string `json:"secretKey"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type updateProfileRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

// decodeStrict rejects bodies carrying fields the endpoint does not know.
func decodeStrict(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

func (s *Server) RegisterUser(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Name, req.Email, req.PhoneNumber, req.Password, req.ReferredBy)
	if err != nil {
		return err
	}
	if err := s.commands.Register.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.signedIn(c, http.StatusCreated, "Registered Successfully", userID, user.RoleUser)
}

func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return err
	}
	u, err := s.commands.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return s.signedIn(c, http.StatusOK, "Logged In Successfully", u.ID(), u.Role())
}

func (s *Server) AdminLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewAdminLoginCommand(req.Email, req.Password, req.SecretKey)
	if err != nil {
		return err
	}
	u, err := s.commands.AdminLogin.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return s.signedIn(c, http.StatusOK, "Admin Logged In Successfully", u.ID(), u.Role())
}

// signedIn issues the session cookie and answers with the fresh profile.
func (s *Server) signedIn(c echo.Context, status int, message string, userID kernel.UUID, role user.Role) error {
	token, err := s.startSession(c, userID, role)
	if err != nil {
		return err
	}

	profile, err := s.profile(c, userID)
	if err != nil {
		return err
	}
	return respond(c, status, message, echo.Map{"user": profile, "token": token})
}

func (s *Server) Logout(c echo.Context) error {
	c.SetCookie(s.cookies.cleared())
	return respond(c, http.StatusOK, "Logged Out Successfully", nil)
}

func (s *Server) Me(c echo.Context) error {
	profile, err := s.profile(c, principal(c).UserID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Profile fetched", echo.Map{"user": profile})
}

func (s *Server) profile(c echo.Context, userID kernel.UUID) (queries.GetUserProfileQueryResponse, error) {
	query, err := queries.NewGetUserProfileQuery(userID)
	if err != nil {
		return queries.GetUserProfileQueryResponse{}, err
	}
	return s.queries.UserProfile.Handle(c.Request().Context(), query)
}

func (s *Server) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewChangePasswordCommand(principal(c).UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.commands.ChangePassword.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Password changed successfully", nil)
}

func (s *Server) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := decodeStrict(c, &req); err != nil {
		return err
	}

	userID := principal(c).UserID
	cmd, err := commands.NewUpdateProfileCommand(userID, user.Patch{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}
	if err := s.commands.UpdateProfile.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	profile, err := s.profile(c, userID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Profile updated successfully", echo.Map{"user": profile})
}

func (s *Server) ListUsers(c echo.Context) error {
	return s.listUsers(c, false)
}

func (s *Server) ListCustomers(c echo.Context) error {
	return s.listUsers(c, true)
}

func (s *Server) listUsers(c echo.Context, customersOnly bool) error {
	search, err := optionalQuery[string](c, "query")
	if err != nil {
		return err
	}
	term := ""
	if search != nil {
		term = *search
	}

	users, err := s.queries.ListUsers.Handle(c.Request().Context(), queries.NewListUsersQuery(term, customersOnly))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Users fetched", echo.Map{"count": len(users), "users": users})
}

func (s *Server) GetUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	profile, err := s.profile(c, userID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User fetched", echo.Map{"user": profile})
}

func (s *Server) BlockUser(c echo.Context) error {
	return s.setUserStatus(c, true, "User blocked")
}

func (s *Server) UnblockUser(c echo.Context) error {
	return s.setUserStatus(c, false, "User unblocked")
}

func (s *Server) setUserStatus(c echo.Context, blocked bool, message string) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewSetUserStatusCommand(userID, blocked)
	if err != nil {
		return err
	}
	if err := s.commands.SetUserStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return respond(c, http.StatusOK, message, echo.Map{"id": userID.String()})
}

func (s *Server) ChangeUserRole(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeUserRoleCommand(userID, req.Role)
	if err != nil {
		return err
	}
	if err := s.commands.ChangeUserRole.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User role updated", echo.Map{"id": userID.String(), "role": req.Role})
}

func (s *Server) DeleteUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return err
	}
	if err := s.commands.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User deleted", echo.Map{"id": userID.String()})
}
