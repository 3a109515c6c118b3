package controllers

import (
	"monopoly-online/app/models"
	"monopoly-online/pkg"
	"monopoly-online/platform/cache"
	"monopoly-online/platform/database"

	"github.com/gofiber/fiber/v2"
)

const roomKeyTTL = 3600 // seconds

// CreateGame reserves a lobby room: a waiting row plus the TTL'd Redis key.
// The engine itself is created when the host connects over the socket
// channel with the returned code.
func CreateGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	maxPlayers := gameCreateDto.MaxPlayers
	if maxPlayers < 2 {
		maxPlayers = 2
	}
	if maxPlayers > 3 {
		maxPlayers = 3
	}

	game := &models.Game{
		Id:         pkg.RandString(6),
		Name:       gameCreateDto.Name,
		Status:     "waiting",
		MaxPlayers: maxPlayers,
	}
	if _, err := db.Model(game).Insert(); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	if conn, err := cache.CreateRedisConnection(); err == nil {
		cache.SetEx("room."+game.Id, roomKeyTTL, "waiting", &conn)
		conn.Close()
	}

	return c.JSON(fiber.Map{"id": game.Id})
}

// GetAllAvailGames lists rooms still waiting for players.
func GetAllAvailGames(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	var games []models.Game
	if err := db.Model(&games).Where("status = ?", "waiting").Select(); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(games)
}

// FindAvailGame picks one joinable room, for quick matching.
func FindAvailGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	game := new(models.Game)
	if err := db.Model(game).Where("status = ?", "waiting").Limit(1).Select(); err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(fiber.Map{"id": game.Id})
}

// VerifyGame checks whether a room code is live, against the TTL'd key the
// socket layer maintains in Redis.
func VerifyGame(c *fiber.Ctx) error {
	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	conn, err := cache.CreateRedisConnection()
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	defer conn.Close()

	exists, err := cache.Exists("room."+verifyGameDto.Code, &conn)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"status": exists})
}
