package user

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/onlinebookstore/pkg/errors"
)

// MsgPasswordTooLong bcrypt只处理前72字节，超出部分拒绝而不是截断
const MsgPasswordTooLong = "Password must be at most 72 bytes"

// bcryptMaxBytes bcrypt输入长度上限（字节，不是字符）
const bcryptMaxBytes = 72

// 密码编码器名称（对应配置auth.password_encoder）
const (
	EncoderPlaintext = "plaintext"
	EncoderBcrypt    = "bcrypt"
)

// PasswordEncoder 凭证校验策略
// 设计说明：
// 1. 注册时Encode，登录时Matches，Service不关心具体算法
// 2. plaintext原样保存、逐字节比较，与现有数据兼容
// 3. 切换为bcrypt不影响HTTP接口契约，但已有的明文数据需要迁移
type PasswordEncoder interface {
	Encode(raw string) (string, error)
	Matches(encoded, raw string) bool
}

// PlaintextEncoder 明文编码器（区分大小写的精确比较）
type PlaintextEncoder struct{}

func (PlaintextEncoder) Encode(raw string) (string, error) {
	return raw, nil
}

func (PlaintextEncoder) Matches(encoded, raw string) bool {
	return encoded == raw
}

// BcryptEncoder bcrypt编码器
type BcryptEncoder struct {
	Cost int
}

func (e BcryptEncoder) Encode(raw string) (string, error) {
	if len(raw) > bcryptMaxBytes {
		return "", apperrors.Invalid(apperrors.ErrInvalidParams.Message, map[string]string{"password": MsgPasswordTooLong})
	}
	cost := e.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return "", &apperrors.AppError{Code: apperrors.ErrCodeInternal, Message: "password encoding failed", Err: err}
	}
	return string(hashed), nil
}

func (e BcryptEncoder) Matches(encoded, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(raw)) == nil
}

// NewPasswordEncoder 根据名称创建编码器
func NewPasswordEncoder(name string, bcryptCost int) (PasswordEncoder, error) {
	switch name {
	case "", EncoderPlaintext:
		return PlaintextEncoder{}, nil
	case EncoderBcrypt:
		return BcryptEncoder{Cost: bcryptCost}, nil
	default:
		return nil, fmt.Errorf("unknown password encoder: %q", name)
	}
}
