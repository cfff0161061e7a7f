package user

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	userproto "github.com/s21platform/user-proto/user-proto"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

type Client struct {
	client userproto.UserServiceClient
}

func New(cfg *config.Config) *Client {
	conn, err := grpc.NewClient(
		fmt.Sprintf("%s:%s", cfg.UserService.Host, cfg.UserService.Port),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatalf("failed to connect user service: %v", err)
	}

	return &Client{
		client: userproto.NewUserServiceClient(conn),
	}
}

func (c *Client) GetUserInfoByUUID(ctx context.Context, userUUID string) (*model.UserInfo, error) {
	resp, err := c.client.GetUserInfoByUUID(ctx, &userproto.GetUserInfoByUUIDIn{
		Uuid: userUUID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	return &model.UserInfo{
		UserID:    userUUID,
		Nickname:  resp.Nickname,
		AvatarURL: resp.Avatar,
	}, nil
}
