package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestMongoSearchFilter(t *testing.T) {
	t.Run("без запроса", func(t *testing.T) {
		filter := mongoSearchFilter("")

		assert.Equal(t, bson.M{"deletedAt": nil}, filter)
	})

	t.Run("спецсимволы экранируются", func(t *testing.T) {
		filter := mongoSearchFilter("a.b*(c)")

		pattern := bson.Regex{Pattern: `a\.b\*\(c\)`, Options: "i"}
		assert.Equal(t, bson.M{
			"deletedAt": nil,
			"$or": bson.A{
				bson.M{"title": pattern},
				bson.M{"genre": pattern},
			},
		}, filter)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "dune", escapeLike("dune"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\x`, escapeLike(`c:\x`))
}
