package app

import (
	"fmt"
	"net/http"
	"taskhub/internal/app/deps"
	"taskhub/internal/app/services"
	"taskhub/internal/http/handlers/auth"
	login "taskhub/internal/http/handlers/auth/log_in"
	resetpassword "taskhub/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "taskhub/internal/http/handlers/auth/send_password_reset_token"
	signup "taskhub/internal/http/handlers/auth/sign_up"
	createtask "taskhub/internal/http/handlers/tasks/create_task"
	deletetask "taskhub/internal/http/handlers/tasks/delete_task"
	listusertasks "taskhub/internal/http/handlers/tasks/list_user_tasks"
	updatetask "taskhub/internal/http/handlers/tasks/update_task"
	me "taskhub/internal/http/handlers/user/me"
	updateuser "taskhub/internal/http/handlers/user/update_user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signup.New(s.SignUp, deps.EmailNormalizer))
	authRouter.Method(http.MethodPost, "/login", login.New(s.LogIn, deps.EmailNormalizer))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken, deps.EmailNormalizer),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	profileRouter := chi.NewRouter()
	profileRouter.Use(auth.SetAuthTokenToContext)
	profileRouter.Method(http.MethodGet, "/me", me.New(s.GetProfile))
	profileRouter.Method(http.MethodPatch, "/me", updateuser.New(s.UpdateProfile))

	tasksRouter := chi.NewRouter()
	tasksRouter.Use(auth.SetAuthTokenToContext)
	tasksRouter.Method(http.MethodPost, "/", createtask.New(s.CreateTask))
	tasksRouter.Method(http.MethodGet, "/", listusertasks.New(s.ListUserTasks))
	tasksRouter.Method(http.MethodPatch, "/{taskID:[0-9]+}", updatetask.New(s.UpdateTask))
	tasksRouter.Method(http.MethodDelete, "/{taskID:[0-9]+}", deletetask.New(s.DeleteTask))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/profile", profileRouter)
	router.Mount("/tasks", tasksRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
