package commentRepository

import (
	"time"

	mongoDB "TechTalks/database/mongo"
	"TechTalks/internal/entity"
	contextPkg "TechTalks/pkg/context"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/net/context"
)

const mongoCollection = mongoDB.CommentCollection

type CommentDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	BlogID    string             `bson:"blog_Id"`
	Text      string             `bson:"text"`
	UserName  string             `bson:"user_name"`
	UserEmail string             `bson:"user_email"`
	UserImage string             `bson:"user_image,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty"`
}

type commentsMongoRepository struct {
	coll *mongo.Collection
	log  *logrus.Logger
}

func buildBlogIDFilter(blogID string) bson.M {
	return bson.M{"blog_Id": blogID}
}

func (r *commentsMongoRepository) CreateComment(ctx context.Context, comment entity.Comment) (entity.InsertResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	doc := CommentDocument{
		BlogID:    comment.BlogID,
		Text:      comment.Text,
		UserName:  comment.UserName,
		UserEmail: comment.UserEmail,
		UserImage: comment.UserImage,
		CreatedAt: comment.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return entity.InsertResult{}, err
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return entity.InsertResult{Acknowledged: true, InsertedID: oid.Hex()}, nil
}

func (r *commentsMongoRepository) ListComments(ctx context.Context) ([]entity.Comment, error) {
	return r.find(ctx, bson.M{}, "ListComments")
}

func (r *commentsMongoRepository) ListCommentsByBlogID(ctx context.Context, blogID string) ([]entity.Comment, error) {
	return r.find(ctx, buildBlogIDFilter(blogID), "ListCommentsByBlogID")
}

func (r *commentsMongoRepository) find(ctx context.Context, filter bson.M, operation string) ([]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []CommentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " decode err")
		return nil, err
	}

	list := make([]entity.Comment, 0, len(docs))
	for _, doc := range docs {
		list = append(list, makeComment(doc))
	}
	return list, nil
}

func makeComment(doc CommentDocument) entity.Comment {
	return entity.Comment{
		ID:        doc.ID.Hex(),
		BlogID:    doc.BlogID,
		Text:      doc.Text,
		UserName:  doc.UserName,
		UserEmail: doc.UserEmail,
		UserImage: doc.UserImage,
		CreatedAt: doc.CreatedAt,
	}
}
