package service

import (
	"context"
	"exam_prep_backend/internal/config"
	"exam_prep_backend/internal/model"
	"exam_prep_backend/internal/repository"
	"exam_prep_backend/internal/util"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider 定义通用存储接口
type StorageProvider interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
	UploadFile(ctx context.Context, filename string, localPath string, contentType string) (string, error)
	Delete(ctx context.Context, filename string) error
	GetURL(filename string) string
}

// LocalStorageProvider 本地存储实现
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, filename)
	dir := filepath.Dir(dst)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	_, err = io.Copy(out, reader)
	if err != nil {
		return "", err
	}

	return p.GetURL(filename), nil
}

func (p *LocalStorageProvider) UploadFile(ctx context.Context, filename string, localPath string, contentType string) (string, error) {
	src, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", err
	}

	return p.Upload(ctx, filename, src, info.Size(), contentType)
}

func (p *LocalStorageProvider) Delete(ctx context.Context, filename string) error {
	return os.Remove(filepath.Join(p.Config.LocalPath, filename))
}

func (p *LocalStorageProvider) GetURL(filename string) string {
	return "/uploads/" + filename
}

// MinioStorageProvider MinIO存储实现
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *MinioStorageProvider) UploadFile(ctx context.Context, filename string, localPath string, contentType string) (string, error) {
	_, err := p.Client.FPutObject(ctx, p.Config.MinioBucket, filename, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, filename string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, filename, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) GetURL(filename string) string {
	return "/" + p.Config.MinioBucket + "/" + filename
}

// MediaService 闪卡桥接的媒体上传：转换为网页友好格式后入库
type MediaService struct {
	Provider  StorageProvider
	MediaRepo *repository.AnkiMediaRepository
}

func NewMediaService(cfg *config.Config, mediaRepo *repository.AnkiMediaRepository) (*MediaService, error) {
	var provider StorageProvider
	switch cfg.Storage.Type {
	case "minio":
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err != nil {
			return nil, err
		}
		provider = p
	default:
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}

	return &MediaService{
		Provider:  provider,
		MediaRepo: mediaRepo,
	}, nil
}

// webFriendlyFormats ffprobe 返回的格式名中无需转换的图片格式
var webFriendlyFormats = []string{"jpeg", "png", "gif"}

func isWebFriendly(format string) bool {
	for _, f := range webFriendlyFormats {
		if strings.Contains(format, f) {
			return true
		}
	}
	return false
}

// UploadImage 上传闪卡媒体图片。webp/bmp/tiff 等格式先转成JPEG
func (s *MediaService) UploadImage(ctx context.Context, localPath, originalName string) (*model.AnkiMedia, error) {
	info, err := util.GetImageInfo(localPath)
	if err != nil {
		return nil, util.ErrUnsupportedMediaType
	}
	if info.Width == 0 || info.Height == 0 {
		return nil, util.ErrUnsupportedMediaType
	}

	uploadPath := localPath
	contentType := "image/jpeg"
	ext := ".jpg"

	if isWebFriendly(info.Format) {
		switch {
		case strings.Contains(info.Format, "png"):
			contentType = "image/png"
			ext = ".png"
		case strings.Contains(info.Format, "gif"):
			contentType = "image/gif"
			ext = ".gif"
		}
	} else {
		converted := localPath + ".jpg"
		if err := util.ConvertToJPEG(localPath, converted); err != nil {
			return nil, err
		}
		defer os.Remove(converted)
		uploadPath = converted
	}

	id := uuid.New().String()
	filename := "anki/" + id + ext

	url, err := s.Provider.UploadFile(ctx, filename, uploadPath, contentType)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(uploadPath)
	if err != nil {
		return nil, err
	}

	media := &model.AnkiMedia{
		UUIDBase:    model.UUIDBase{ID: id},
		Filename:    originalName,
		ContentType: contentType,
		Size:        stat.Size(),
		URL:         url,
	}
	if err := s.MediaRepo.Create(media); err != nil {
		return nil, err
	}
	return media, nil
}

// DeleteMedia 删除媒体文件及其记录
func (s *MediaService) DeleteMedia(ctx context.Context, id string) error {
	media, err := s.MediaRepo.FindByID(id)
	if err != nil {
		return err
	}

	ext := filepath.Ext(media.URL)
	if err := s.Provider.Delete(ctx, "anki/"+media.ID+ext); err != nil {
		return err
	}
	return s.MediaRepo.Delete(media.ID)
}

// GetMediaList 获取全部媒体记录
func (s *MediaService) GetMediaList() ([]model.AnkiMedia, error) {
	return s.MediaRepo.FindAll()
}
