package blogRepository

import (
	"errors"
	"regexp"
	"time"

	mongoDB "TechTalks/database/mongo"
	"TechTalks/internal/api/blog"
	"TechTalks/internal/entity"
	contextPkg "TechTalks/pkg/context"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/net/context"
)

const mongoCollection = mongoDB.BlogCollection

type BlogDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	Image            string             `bson:"image"`
	Category         string             `bson:"category"`
	ShortDescription string             `bson:"short_description"`
	LongDescription  string             `bson:"long_description"`
	CreatedAt        time.Time          `bson:"created_at,omitempty"`
}

type blogsMongoRepository struct {
	coll *mongo.Collection
	log  *logrus.Logger
}

// buildBlogFilter composes the listing predicate: exact category match and a
// case-insensitive literal substring match on any of the text fields.
func buildBlogFilter(q blogs.ListQuery) bson.M {
	filter := bson.M{}

	if q.HasFilter() {
		filter["category"] = q.Filter
	}

	if q.HasSearch() {
		pattern := regexp.QuoteMeta(q.Search)
		or := make(bson.A, 0, len(blogs.SearchFields))
		for _, field := range blogs.SearchFields {
			or = append(or, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
		}
		filter["$or"] = or
	}

	return filter
}

func buildBlogSet(update entity.BlogUpdate) bson.M {
	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.ShortDescription != nil {
		set["short_description"] = *update.ShortDescription
	}
	if update.LongDescription != nil {
		set["long_description"] = *update.LongDescription
	}
	return set
}

func (r *blogsMongoRepository) CreateBlog(ctx context.Context, blog entity.Blog) (entity.InsertResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	doc := BlogDocument{
		Title:            blog.Title,
		Image:            blog.Image,
		Category:         blog.Category,
		ShortDescription: blog.ShortDescription,
		LongDescription:  blog.LongDescription,
		CreatedAt:        blog.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return entity.InsertResult{}, err
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return entity.InsertResult{Acknowledged: true, InsertedID: oid.Hex()}, nil
}

func (r *blogsMongoRepository) GetBlogByID(ctx context.Context, id string) (*entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("GetBlogByID malformed id")
		return nil, blogs.ErrInvalidBlogID
	}

	var doc BlogDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return nil, err
	}

	blog := r.makeBlog(doc)
	return &blog, nil
}

func (r *blogsMongoRepository) ListBlogs(ctx context.Context, q blogs.ListQuery) ([]entity.Blog, int64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	filter := buildBlogFilter(q)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountBlogs execution err")
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(q.Skip()).
		SetLimit(q.Limit())

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListBlogs execution err")
		return nil, 0, err
	}

	var docs []BlogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListBlogs decode err")
		return nil, 0, err
	}

	list := make([]entity.Blog, 0, len(docs))
	for _, doc := range docs {
		list = append(list, r.makeBlog(doc))
	}

	return list, total, nil
}

func (r *blogsMongoRepository) UpsertBlog(ctx context.Context, id string, update entity.BlogUpdate) (entity.UpdateResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("UpsertBlog malformed id")
		return entity.UpdateResult{}, blogs.ErrInvalidBlogID
	}

	doc := bson.M{
		"$set":         buildBlogSet(update),
		"$setOnInsert": bson.M{"created_at": time.Now()},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, doc, options.Update().SetUpsert(true))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("UpsertBlog execution err")
		return entity.UpdateResult{}, err
	}

	result := entity.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if upserted, ok := res.UpsertedID.(primitive.ObjectID); ok {
		hex := upserted.Hex()
		result.UpsertedID = &hex
	}

	return result, nil
}

func (r *blogsMongoRepository) ListCategories(ctx context.Context) ([]string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$category"}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListCategories execution err")
		return nil, err
	}

	var groups []struct {
		Category string `bson:"_id"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListCategories decode err")
		return nil, err
	}

	categories := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.Category != "" {
			categories = append(categories, g.Category)
		}
	}

	return categories, nil
}

func (r *blogsMongoRepository) makeBlog(doc BlogDocument) entity.Blog {
	return entity.Blog{
		ID:               doc.ID.Hex(),
		Title:            doc.Title,
		Image:            doc.Image,
		Category:         doc.Category,
		ShortDescription: doc.ShortDescription,
		LongDescription:  doc.LongDescription,
		CreatedAt:        doc.CreatedAt,
	}
}
