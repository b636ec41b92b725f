package middleware

import (
	"fmt"
	"time"
	"zpbot/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// SignMediaToken issues an HMAC token granting read access to one stored
// media file. The token rides on the URL handed to the vision model and to
// citizens, standing in for a signed storage URL.
func SignMediaToken(cfg *config.Config, fileName string) (string, error) {
	claims := jwt.MapClaims{
		"file": fileName,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Duration(cfg.MediaTokenTTL) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.MediaTokenKey))
}

// BuildMediaURL returns the public, token-signed URL for a stored media
// file name.
func BuildMediaURL(cfg *config.Config, fileName string) (string, error) {
	token, err := SignMediaToken(cfg, fileName)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/media/%s?token=%s", cfg.BaseURL, fileName, token), nil
}

// MediaTokenMiddleware checks the token query parameter against the file
// path parameter before the media is served.
func MediaTokenMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Query("token")
		if tokenString == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing media token!", nil)
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.MediaTokenKey), nil
		})
		if err != nil || !token.Valid {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired media token!", nil)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid media token claims!", nil)
		}
		if file, _ := claims["file"].(string); file != c.Params("file") {
			return JsonResponse(c, fiber.StatusForbidden, false, "Token does not match requested file!", nil)
		}

		return c.Next()
	}
}
