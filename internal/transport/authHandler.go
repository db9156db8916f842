package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"room-booking-frontend/internal/service"
	"room-booking-frontend/internal/session"
)

type AuthHandler struct {
	auth  service.AuthService
	store *session.Store
}

func NewAuthHandler(auth service.AuthService, store *session.Store) *AuthHandler {
	return &AuthHandler{auth: auth, store: store}
}

type loginPage struct {
	page
	Email string
}

type registerPage struct {
	page
	Form service.RegisterRequest
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", loginPage{page: newPage(c)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	sess, err := h.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		data := loginPage{page: newPage(c), Email: email}
		data.Error = errorMessage(err)
		c.HTML(http.StatusOK, "login.html", data)
		return
	}

	if err := h.store.Issue(c, sess); err != nil {
		data := loginPage{page: newPage(c), Email: email}
		data.Error = errorMessage(err)
		c.HTML(http.StatusOK, "login.html", data)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", registerPage{page: newPage(c)})
}

func (h *AuthHandler) Register(c *gin.Context) {
	form := service.RegisterRequest{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		DOB:      c.PostForm("dob"),
		IsAdmin:  c.PostForm("isAdmin") == "true",
	}

	sess, err := h.auth.Register(c.Request.Context(), &form)
	if err != nil {
		data := registerPage{page: newPage(c), Form: form}
		data.Error = errorMessage(err)
		c.HTML(http.StatusOK, "register.html", data)
		return
	}

	if err := h.store.Issue(c, sess); err != nil {
		data := registerPage{page: newPage(c), Form: form}
		data.Error = errorMessage(err)
		c.HTML(http.StatusOK, "register.html", data)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Clear(c)
	c.Redirect(http.StatusSeeOther, "/")
}
