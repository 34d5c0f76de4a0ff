package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ImageInfo 存储图片信息
type ImageInfo struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
}

// GetImageInfo 使用ffmpeg-go库获取图片元数据
func GetImageInfo(imagePath string) (*ImageInfo, error) {
	fileInfo, err := os.Stat(imagePath)
	if err != nil {
		return nil, fmt.Errorf("图片文件不存在: %v", err)
	}

	jsonOutput, err := ffmpeg.Probe(imagePath)
	if err != nil {
		return nil, fmt.Errorf("获取图片信息失败: %v", err)
	}

	var result struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
		} `json:"streams"`
		Format struct {
			Size   string `json:"size"`
			Format string `json:"format_name"`
		} `json:"format"`
	}

	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("解析图片信息失败: %v", err)
	}

	var width, height int
	for _, stream := range result.Streams {
		if stream.CodecType == "video" {
			width = stream.Width
			height = stream.Height
			break
		}
	}

	size, err := strconv.ParseInt(result.Format.Size, 10, 64)
	if err != nil {
		size = fileInfo.Size()
	}

	format := result.Format.Format
	if format == "" {
		format = "unknown"
	}

	return &ImageInfo{
		Width:  width,
		Height: height,
		Format: format,
		Size:   size,
	}, nil
}

// ConvertToJPEG 把任意格式的图片转为JPEG，Anki桥接只接受网页友好格式
func ConvertToJPEG(srcPath, dstPath string) error {
	err := ffmpeg.Input(srcPath).
		Output(dstPath, ffmpeg.KwArgs{"q:v": 2}).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("图片转换失败: %v", err)
	}
	return nil
}
