package outs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"squadBot/internal/domain"
	"squadBot/internal/mocks"
)

func TestMultiSender_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	twitch := mocks.NewMockOutgoingMessagePort(ctrl)
	kick := mocks.NewMockOutgoingMessagePort(ctrl)

	m := NewMultiSender()
	m.Register(domain.PlatformTwitch, twitch)
	m.Register(domain.PlatformKick, kick)

	twitch.EXPECT().SendMessage(gomock.Any(), domain.PlatformTwitch, "#room", "hi").Return(nil)
	kick.EXPECT().SendMessage(gomock.Any(), domain.PlatformKick, "42", "yo").Return(nil)

	require.NoError(t, m.SendMessage(context.Background(), domain.PlatformTwitch, "#room", "hi"))
	require.NoError(t, m.SendMessage(context.Background(), domain.PlatformKick, "42", "yo"))
}

func TestMultiSender_Unregistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	web := mocks.NewMockOutgoingMessagePort(ctrl)

	m := NewMultiSender()
	m.Register(domain.PlatformWeb, web)
	m.Register(domain.PlatformKick, nil)
	m.Unregister(domain.PlatformWeb)

	assert.Error(t, m.SendMessage(context.Background(), domain.PlatformWeb, "", "hi"))
	assert.Error(t, m.SendMessage(context.Background(), domain.PlatformKick, "", "hi"))

	var nilSender *MultiSender
	assert.Error(t, nilSender.SendMessage(context.Background(), domain.PlatformWeb, "", "hi"))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t,
		[]string{"-- Duos --", "1. Ann, Bo", "2. Cez"},
		SplitLines("-- Duos --\n1. Ann, Bo\n\n2. Cez\n"),
	)
	assert.Empty(t, SplitLines(""))
}
