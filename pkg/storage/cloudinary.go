// Package storage uploads logo images to Cloudinary.
package storage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultAPIBase = "https://api.cloudinary.com/v1_1"
	// 200x200 fit, automatic quality and format
	LogoTransformation = "c_fit,w_200,h_200/q_auto/f_auto"
)

// UploadedImage is what the image host reports for a stored file
type UploadedImage struct {
	URL      string
	PublicId string
	Width    int
	Height   int
	Format   string
}

// ImageStore persists an image and returns its durable URL
type ImageStore interface {
	Upload(ctx context.Context, filename string, data []byte) (*UploadedImage, error)
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	APIBase   string // overrides the public API, used by tests
}

type Cloudinary struct {
	cfg    CloudinaryConfig
	client *resty.Client
	now    func() time.Time
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewCloudinary(cfg CloudinaryConfig) *Cloudinary {
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIBase, "/")).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")

	return &Cloudinary{cfg: cfg, client: client, now: time.Now}
}

// Configured reports whether credentials are present
func (c *Cloudinary) Configured() bool {
	return c.cfg.CloudName != "" && c.cfg.APIKey != "" && c.cfg.APISecret != ""
}

func (c *Cloudinary) Upload(ctx context.Context, filename string, data []byte) (*UploadedImage, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("cloudinary is not configured")
	}

	params := map[string]string{
		"folder":         c.cfg.Folder,
		"timestamp":      strconv.FormatInt(c.now().Unix(), 10),
		"transformation": LogoTransformation,
	}
	form := make(map[string]string, len(params)+2)
	for k, v := range params {
		form[k] = v
	}
	form["api_key"] = c.cfg.APIKey
	form["signature"] = Sign(params, c.cfg.APISecret)

	var result uploadResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetFileReader("file", filename, bytes.NewReader(data)).
		SetResult(&result).
		SetError(&result).
		Post("/" + c.cfg.CloudName + "/image/upload")
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if result.Error != nil {
			msg = result.Error.Message
		}
		return nil, fmt.Errorf("cloudinary upload rejected: %s", msg)
	}

	return &UploadedImage{
		URL:      result.SecureURL,
		PublicId: result.PublicID,
		Width:    result.Width,
		Height:   result.Height,
		Format:   result.Format,
	}, nil
}

// Sign computes the request signature: the params sorted by key, joined as
// k=v pairs with '&', followed by the secret, hashed with SHA-1
func Sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
