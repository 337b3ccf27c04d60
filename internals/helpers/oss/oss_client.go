package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"image"
	"io"
	"log"
	"math"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			return float32(f)
		}
	}
	return def
}

const maxUploadSize = 25 << 20 // 25MB per file

/* =======================================================================
   WebP re-encode untuk foto dokumentasi
======================================================================= */

type WebPOptions struct {
	MaxW    int
	MaxH    int
	Quality float32
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:    envInt("IMAGE_WEBP_MAX_H", 1600),
		Quality: envFloat("IMAGE_WEBP_QUALITY", 80),
	}
}

// decodeImage: imaging (jpeg/png/gif + auto-orientation EXIF), fallback webp
func decodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	img, err := imaging.Decode(bytes.NewReader(all), imaging.AutoOrientation(true))
	if err == nil {
		return img, nil
	}
	if w, werr := webp.Decode(bytes.NewReader(all)); werr == nil {
		return w, nil
	}
	return nil, err
}

// downscaleIfNeeded: keep aspect, CatmullRom (kualitas bagus)
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW > 0 && w > maxW) || (maxH > 0 && h > maxH) {
		scale := 1.0
		if maxW > 0 {
			scale = math.Min(scale, float64(maxW)/float64(w))
		}
		if maxH > 0 {
			scale = math.Min(scale, float64(maxH)/float64(h))
		}
		nw := int(math.Round(float64(w) * scale))
		nh := int(math.Round(float64(h) * scale))
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		return dst
	}
	return src
}

// ConvertToWebP: baca → decode → resize (opsional) → encode webp
func ConvertToWebP(file multipart.File) ([]byte, error) {
	opt := defaultWebPOptionsFromEnv()
	all, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	img, err := decodeImage(all)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, opt.MaxW, opt.MaxH)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: opt.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/* =======================================================================
   OSS Service
======================================================================= */

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string // mis. "report-media"
}

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

// UploadReportMedia: satu file lampiran report → URL publik.
// Foto (jpg/png/gif/webp) di-recompress ke webp dulu; file lain diunggah apa adanya.
// Key: {prefix}/{epoch-millis}-{rand6}{ext}
func (s *OSSService) UploadReportMedia(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file terlalu besar (maks %d bytes)", maxUploadSize)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	var (
		data []byte
		ct   string
	)

	if isImageExt(ext) {
		if webpData, cerr := ConvertToWebP(src); cerr == nil {
			data, ct, ext = webpData, "image/webp", ".webp"
		} else {
			// decode gagal (file korup / format aneh) → upload apa adanya
			log.Printf("[OSS] webp convert gagal (%s): %v — upload original", fh.Filename, cerr)
			if _, serr := src.Seek(0, io.SeekStart); serr != nil {
				return "", serr
			}
			if data, err = io.ReadAll(src); err != nil {
				return "", err
			}
			ct = contentTypeFor(ext, data)
		}
	} else {
		if data, err = io.ReadAll(src); err != nil {
			return "", err
		}
		ct = contentTypeFor(ext, data)
	}

	key := s.buildObjectKey(ext)
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(ct),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

// KeyFromPublicURL: kebalikan PublicURL — object key dari URL publik yang
// pernah kita keluarkan. "" kalau URL bukan milik prefix/bucket ini.
func (s *OSSService) KeyFromPublicURL(raw string) string {
	if base := getEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		if rest, ok := strings.CutPrefix(raw, strings.TrimRight(base, "/")+"/"); ok {
			return rest
		}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return ""
	}
	if s.Prefix != "" && !strings.HasPrefix(key, s.Prefix+"/") {
		return ""
	}
	return key
}

func (s *OSSService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if base := getEnv("ALI_OSS_PUBLIC_BASE"); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	if s.Endpoint == "" || s.BucketName == "" {
		return ""
	}
	end := s.Endpoint
	end = strings.TrimPrefix(end, "https://")
	end = strings.TrimPrefix(end, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}

/* =======================================================================
   Misc utils
======================================================================= */

// Key mengikuti format lama report-media: {epoch-millis}-{rand6}.{ext}
func (s *OSSService) buildObjectKey(ext string) string {
	prefix := s.Prefix
	if prefix != "" {
		prefix += "/"
	}
	return fmt.Sprintf("%s%d-%s%s", prefix, time.Now().UnixMilli(), RandAlnum(6), ext)
}

const alnum = "abcdefghijklmnopqrstuvwxyz0123456789"

func RandAlnum(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = alnum[int(b[i])%len(alnum)]
	}
	return string(b)
}

func isImageExt(ext string) bool {
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	}
	return false
}

func contentTypeFor(ext string, data []byte) string {
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}
