package imagehost

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/LudwingValecillos/VentaCarniceria/config"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/entity"
	"github.com/LudwingValecillos/VentaCarniceria/internal/domain/service"
	"github.com/LudwingValecillos/VentaCarniceria/internal/util"
)

const (
	defaultImgBBEndpoint = "https://api.imgbb.com/1/upload"
	defaultImgBBTimeout  = 30 * time.Second
)

// imgbbResponse is the subset of the ImgBB upload response that is read.
type imgbbResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

type imgbbHost struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewImgBBHost uploads images to ImgBB. ImgBB has no delete API for anonymous keys, so Delete only logs.
func NewImgBBHost(cfg config.ImgBBConfig, logger *slog.Logger) (service.ImageHost, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("imgbb api key is required")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultImgBBEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultImgBBTimeout
	}

	return &imgbbHost{
		apiKey:     cfg.APIKey,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

func (h *imgbbHost) Upload(ctx context.Context, image *entity.ImageUpload) (string, error) {
	if err := validateImage(image); err != nil {
		return "", err
	}

	form := url.Values{
		"key":   {h.apiKey},
		"image": {base64.StdEncoding.EncodeToString(image.Data)},
	}
	if name := strings.TrimSuffix(filepath.Base(image.Filename), filepath.Ext(image.Filename)); name != "" && name != "." {
		form.Set("name", name)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "imgbb upload request failed")
	}
	defer resp.Body.Close()

	var body imgbbResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errors.Wrapf(err, "decode imgbb response (status %d)", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !body.Success {
		return "", errors.Errorf("imgbb upload failed with status %d: %s", resp.StatusCode, body.Error.Message)
	}
	if body.Data.URL == "" {
		return "", errors.New("imgbb response has no image url")
	}

	h.logger.Info("Image uploaded to ImgBB",
		slog.String("url", body.Data.URL),
		slog.String("size", util.FormatBytes(int64(len(image.Data)))),
	)

	return body.Data.URL, nil
}

func (h *imgbbHost) Delete(_ context.Context, url string) error {
	if url == "" {
		return nil
	}
	h.logger.Info("ImgBB has no delete API, leaving hosted image in place",
		slog.String("url", url),
	)

	return nil
}
