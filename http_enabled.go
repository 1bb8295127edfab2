//go:build http_enabled

package main

import (
	"bytes"
	"fmt"
	"github.com/marisvali/tetris1/world"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
)

const uploadUrl = "https://playful-patterns.com/submit-playthrough-tetris1.php"

// makeHttpRequest makes a POST HTTP request to an endpoint and returns the
// body of the response as a string.
func makeHttpRequest(url string, fields map[string]string, files map[string][]byte) (string, error) {
	// Create a buffer to write our multipart form data.
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return "", err
		}
	}
	for k, v := range files {
		part, err := writer.CreateFormFile(k, k)
		if err != nil {
			return "", err
		}
		if _, err = part.Write(v); err != nil {
			return "", err
		}
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	request, err := http.NewRequest("POST", url, &requestBody)
	if err != nil {
		return "", err
	}
	request.Header.Set("content-type", writer.FormDataContentType())

	client := &http.Client{}
	response, err := client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()
	if response.StatusCode != 200 {
		return "", fmt.Errorf("http request failed: %d", response.StatusCode)
	}
	data, err := io.ReadAll(response.Body)
	return string(data), err
}

func uploadPlaythrough(user string, p world.Playthrough) error {
	data, err := p.Serialize()
	if err != nil {
		return err
	}
	_, err = makeHttpRequest(uploadUrl,
		map[string]string{
			"user":               user,
			"release_version":    strconv.FormatInt(p.ReleaseVersion, 10),
			"simulation_version": strconv.FormatInt(p.SimulationVersion, 10),
			"input_version":      strconv.FormatInt(p.InputVersion, 10),
			"id":                 p.Id.String()},
		map[string][]byte{"playthrough": data})
	return err
}

// UploadPlaythroughs sends every finished game to the server. It runs on its
// own goroutine so that a slow connection never stalls the game. A failed
// upload is logged and dropped.
func UploadPlaythroughs(user string, ch chan world.Playthrough) {
	for p := range ch {
		if err := uploadPlaythrough(user, p); err != nil {
			log.Printf("upload of playthrough %s failed: %v", p.Id, err)
		}
	}
}
