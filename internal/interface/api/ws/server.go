// Package ws is a websocket bridge for clients that relay chat from platforms
// without a native adapter, such as a voice chat relay. Bridge messages may
// carry the author's voice roster.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"squadBot/internal/app/events"
	"squadBot/internal/domain"
)

type MessageHandler func(ctx context.Context, msg domain.Message) error

type Server struct {
	addr     string
	log      *zap.Logger
	bus      *events.Bus
	validate *validator.Validate
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*wsClient]struct{}
	handler MessageHandler
}

type wsClient struct {
	id   string
	conn *websocket.Conn

	writeMu sync.Mutex

	chMu     sync.RWMutex
	channels map[string]struct{}
}

func (c *wsClient) writeJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *wsClient) join(channelID string) {
	c.chMu.Lock()
	defer c.chMu.Unlock()
	c.channels[channelID] = struct{}{}
}

func (c *wsClient) joined(channelID string) bool {
	c.chMu.RLock()
	defer c.chMu.RUnlock()
	_, ok := c.channels[channelID]
	return ok
}

func NewServer(cfg Config, bus *events.Bus, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		addr:     cfg.addr(),
		log:      log.Named("ws"),
		bus:      bus,
		validate: validator.New(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*wsClient]struct{}),
	}
}

// Handler exposes the bridge routes. Connections live until ctx is cancelled
// or the client disconnects.
func (s *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/chat", func(w http.ResponseWriter, r *http.Request) {
		s.handleWS(ctx, w, r)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

// Start serves the bridge and blocks until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(ctx),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("shutdown failed", zap.Error(err))
		}
	}()

	s.log.Info("listening", zap.String("addr", s.addr))
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func (s *Server) handleWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", zap.Error(err))
		return
	}

	client := &wsClient{
		id:       uuid.NewString(),
		conn:     conn,
		channels: make(map[string]struct{}),
	}
	replies, unsubscribe := s.bus.Subscribe(events.TopicReply)

	s.mu.Lock()
	s.clients[client] = struct{}{}
	clientCount := len(s.clients)
	s.mu.Unlock()

	s.log.Info("client connected",
		zap.String("client_id", client.id),
		zap.String("remote", r.RemoteAddr),
		zap.Int("clients", clientCount),
	)

	go s.writeReplies(client, replies)
	go s.handleClient(ctx, client, unsubscribe)
}

func (s *Server) writeReplies(client *wsClient, replies <-chan any) {
	for payload := range replies {
		reply, ok := payload.(events.ReplyDTO)
		if !ok || !client.joined(reply.ChannelID) {
			continue
		}
		if err := client.writeJSON(reply); err != nil {
			s.log.Warn("write failed", zap.String("client_id", client.id), zap.Error(err))
			client.conn.Close()
		}
	}
}

func (s *Server) handleClient(ctx context.Context, client *wsClient, unsubscribe func()) {
	defer func() {
		unsubscribe()
		client.conn.Close()

		s.mu.Lock()
		delete(s.clients, client)
		clientCount := len(s.clients)
		s.mu.Unlock()

		s.log.Info("client disconnected", zap.String("client_id", client.id), zap.Int("clients", clientCount))
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			client.conn.Close()
		case <-done:
		}
	}()

	for {
		msgType, data, err := client.conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("read failed", zap.String("client_id", client.id), zap.Error(err))
			}
			return
		}

		if msgType != websocket.TextMessage {
			continue
		}

		if err := s.dispatchIncoming(ctx, client, data); err != nil {
			s.log.Warn("incoming dispatch failed", zap.String("client_id", client.id), zap.Error(err))
		}
	}
}

type incomingPayload struct {
	Text      string        `json:"text" validate:"required,max=2000"`
	ChannelID string        `json:"channel_id" validate:"max=100"`
	UserID    string        `json:"user_id"`
	Username  string        `json:"username" validate:"max=100"`
	IsPrivate bool          `json:"is_private"`
	Voice     *voicePayload `json:"voice"`
}

type voicePayload struct {
	ChannelID string   `json:"channel_id"`
	Members   []string `json:"members" validate:"dive,required"`
}

func (s *Server) dispatchIncoming(ctx context.Context, client *wsClient, data []byte) error {
	handler := s.getHandler()
	if handler == nil {
		return nil
	}

	payload := incomingPayload{}
	if err := json.Unmarshal(data, &payload); err != nil {
		payload = incomingPayload{Text: string(data)}
	}
	payload.Text = strings.TrimSpace(payload.Text)

	if err := s.validate.Struct(payload); err != nil {
		return fmt.Errorf("ws: invalid payload: %w", err)
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" {
		username = "web-user"
	}
	userID := strings.TrimSpace(payload.UserID)
	if userID == "" {
		userID = client.id
	}
	channelID := strings.TrimSpace(payload.ChannelID)

	msg := domain.Message{
		Platform:  domain.PlatformWeb,
		ChannelID: channelID,
		UserID:    userID,
		Username:  username,
		Text:      payload.Text,
		IsPrivate: payload.IsPrivate,
	}
	if payload.Voice != nil {
		msg.Voice = &domain.VoiceState{
			ChannelID: strings.TrimSpace(payload.Voice.ChannelID),
			Members:   payload.Voice.Members,
		}
	}

	client.join(channelID)
	return handler(ctx, msg)
}

func (s *Server) getHandler() MessageHandler {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handler
}

func (s *Server) SetHandler(h MessageHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = h
}

// SendMessage publishes a reply to every client that has posted in channelID.
func (s *Server) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	if platform != domain.PlatformWeb {
		return fmt.Errorf("ws: bridge does not support platform %s", platform)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.bus.Publish(events.TopicReply, events.NewReplyDTO(platform, channelID, text))
	return nil
}

var _ domain.OutgoingMessagePort = (*Server)(nil)
