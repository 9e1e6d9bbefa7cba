package messaging

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	e "waterreminder/internal/core/domain/errors"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/messaging"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const DEFAULT_API_URL = "https://api.nexmo.com/v1/messages"

const authTokenLifetime = 15 * time.Minute

// RCSGateway delivers rich-card messages through the provider's Messages
// API, authenticating each request with a short-lived bearer token signed
// by the application's private key.
type RCSGateway struct {
	log           logging.Logger
	httpClient    http.Client
	apiURL        string
	applicationID string
	privateKey    *rsa.PrivateKey
	now           func() time.Time
}

func NewRCSGateway(
	log logging.Logger,
	apiURL string,
	applicationID string,
	privateKeyPEM []byte,
	timeout time.Duration,
	now func() time.Time,
) (*RCSGateway, error) {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		return nil, err
	}
	if apiURL == "" {
		apiURL = DEFAULT_API_URL
	}
	return &RCSGateway{
		log:           log,
		httpClient:    http.Client{Timeout: timeout},
		apiURL:        apiURL,
		applicationID: applicationID,
		privateKey:    privateKey,
		now:           now,
	}, nil
}

type cardMedia struct {
	Height      string `json:"height"`
	ContentInfo struct {
		FileURL string `json:"fileUrl"`
	} `json:"contentInfo"`
}

type cardReply struct {
	Text         string `json:"text"`
	PostbackData string `json:"postbackData"`
}

type cardSuggestion struct {
	Reply cardReply `json:"reply"`
}

type cardContent struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Media       cardMedia        `json:"media"`
	Suggestions []cardSuggestion `json:"suggestions"`
}

type standaloneCard struct {
	CardOrientation string      `json:"cardOrientation"`
	CardContent     cardContent `json:"cardContent"`
}

type customContent struct {
	ContentMessage struct {
		RichCard struct {
			StandaloneCard standaloneCard `json:"standaloneCard"`
		} `json:"richCard"`
	} `json:"contentMessage"`
}

type messageRequest struct {
	To          string        `json:"to"`
	From        string        `json:"from"`
	Channel     string        `json:"channel"`
	MessageType string        `json:"message_type"`
	Custom      customContent `json:"custom"`
}

type messageResponse struct {
	MessageUUID string `json:"message_uuid"`
}

func (g *RCSGateway) SendRichCard(ctx context.Context, msg messaging.RichCardMessage) error {
	requestBody, err := json.Marshal(newMessageRequest(msg))
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewReader(requestBody))
	if err != nil {
		return err
	}
	authToken, err := g.generateAuthToken()
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+authToken)

	response, err := g.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusMultipleChoices {
		text, _ := io.ReadAll(response.Body)
		return fmt.Errorf("gateway rejected message (%d): %s", response.StatusCode, string(text))
	}

	result := messageResponse{}
	json.NewDecoder(response.Body).Decode(&result)
	g.log.Info(
		ctx,
		"Message accepted by the gateway.",
		logging.Entry("to", msg.To),
		logging.Entry("messageUUID", result.MessageUUID),
	)
	return nil
}

func newMessageRequest(msg messaging.RichCardMessage) messageRequest {
	card := cardContent{
		Title:       msg.Card.Title,
		Description: msg.Card.Description,
		Media:       cardMedia{Height: "SHORT"},
	}
	card.Media.ContentInfo.FileURL = msg.Card.MediaURL
	for _, suggestion := range msg.Card.Suggestions {
		card.Suggestions = append(card.Suggestions, cardSuggestion{
			Reply: cardReply{
				Text:         suggestion.Reply.Text,
				PostbackData: suggestion.Reply.PostbackData,
			},
		})
	}

	request := messageRequest{
		To:          string(msg.To),
		From:        msg.From,
		Channel:     messaging.ChannelRCS,
		MessageType: "custom",
	}
	request.Custom.ContentMessage.RichCard.StandaloneCard = standaloneCard{
		CardOrientation: "VERTICAL",
		CardContent:     card,
	}
	return request
}

func (g *RCSGateway) generateAuthToken() (string, error) {
	now := g.now()
	claims := jwt.MapClaims{
		"application_id": g.applicationID,
		"iat":            now.Unix(),
		"exp":            now.Add(authTokenLifetime).Unix(),
		"jti":            uuid.New().String(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(g.privateKey)
}
