package services

import (
	"patidestek/db"
	"patidestek/inout"
	"patidestek/model"
	"patidestek/pkg/apperr"
	"patidestek/pkg/jwt"
	"patidestek/pkg/monitoring"
	"patidestek/pkg/security"
)

type AuthService struct{}

// Register creates an account with the default USER role and returns a
// signed token plus the public user view. The email's unique index is the
// final arbiter; a race past the pre-check still comes back as Conflict.
func (s *AuthService) Register(req inout.RegisterReq) (*inout.AuthResp, error) {
	var count int64
	if err := db.Dao.Model(&model.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("email already exists")
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}

	user := model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	}
	if err := db.Dao.Create(&user).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, apperr.Conflict("email already exists")
		}
		return nil, err
	}

	token, err := jwt.GenerateToken(user.Id, user.Role)
	if err != nil {
		return nil, err
	}

	monitoring.RecordUserRegistration()
	return &inout.AuthResp{Token: token, User: inout.NewUserView(&user)}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(req inout.LoginReq) (*inout.AuthResp, error) {
	var user model.User
	if err := db.Dao.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if isNotFoundErr(err) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	if !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := jwt.GenerateToken(user.Id, user.Role)
	if err != nil {
		return nil, err
	}

	monitoring.RecordUserLogin()
	return &inout.AuthResp{Token: token, User: inout.NewUserView(&user)}, nil
}

// Me resolves the bearer's identity to its public view.
func (s *AuthService) Me(uid int) (*inout.UserView, error) {
	var user model.User
	if err := db.Dao.First(&user, uid).Error; err != nil {
		if isNotFoundErr(err) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	view := inout.NewUserView(&user)
	return &view, nil
}
