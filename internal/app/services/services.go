package services

import (
	"taskhub/internal/app/deps"
	drl "taskhub/internal/core/domain/rate_limiter"
	"taskhub/internal/core/services"
	"taskhub/internal/core/services/auth"
	createtask "taskhub/internal/core/services/create_task"
	deletetask "taskhub/internal/core/services/delete_task"
	getprofile "taskhub/internal/core/services/get_profile"
	listusertasks "taskhub/internal/core/services/list_user_tasks"
	login "taskhub/internal/core/services/log_in"
	ratelimiting "taskhub/internal/core/services/rate_limiting"
	resetpassword "taskhub/internal/core/services/reset_password"
	sendpasswordresettoken "taskhub/internal/core/services/send_password_reset_token"
	signup "taskhub/internal/core/services/sign_up"
	updateprofile "taskhub/internal/core/services/update_profile"
	updatetask "taskhub/internal/core/services/update_task"
)

type Services struct {
	SignUp                 services.Service[signup.Input, signup.Result]
	LogIn                  services.Service[login.Input, login.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
	GetProfile             services.Service[getprofile.Input, getprofile.Result]
	UpdateProfile          services.Service[updateprofile.Input, updateprofile.Result]

	CreateTask    services.Service[createtask.Input, createtask.Result]
	ListUserTasks services.Service[listusertasks.Input, listusertasks.Result]
	UpdateTask    services.Service[updatetask.Input, updatetask.Result]
	DeleteTask    services.Service[deletetask.Input, deletetask.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = signup.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)
	s.LogIn = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		login.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
			deps.SessionManager,
			deps.Now,
		),
	)
	s.SendPasswordResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresettoken.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordResetTokenGenerator,
			deps.PasswordResetTokenSender,
			deps.Config.PasswordResetValidFor,
			deps.Now,
		),
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)
	s.GetProfile = auth.WithAuthentication(
		deps.SessionManager,
		deps.UserRepository,
		getprofile.New(),
	)
	s.UpdateProfile = auth.WithAuthentication(
		deps.SessionManager,
		deps.UserRepository,
		updateprofile.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
		),
	)

	s.CreateTask = auth.WithAuthentication(
		deps.SessionManager,
		deps.UserRepository,
		createtask.New(
			deps.Logger,
			deps.TaskRepository,
			deps.Now,
		),
	)
	s.ListUserTasks = auth.WithAuthentication(
		deps.SessionManager,
		deps.UserRepository,
		listusertasks.New(
			deps.Logger,
			deps.TaskRepository,
		),
	)
	s.UpdateTask = auth.WithAuthentication(
		deps.SessionManager,
		deps.UserRepository,
		updatetask.New(
			deps.Logger,
			deps.TaskRepository,
		),
	)
	s.DeleteTask = auth.WithAuthentication(
		deps.SessionManager,
		deps.UserRepository,
		deletetask.New(
			deps.Logger,
			deps.TaskRepository,
		),
	)

	return s
}
