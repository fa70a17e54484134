package controller

import (
	"devita_backend/internal/service"
	"devita_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	PostService *service.PostService
}

func NewPostController(postService *service.PostService) *PostController {
	return &PostController{PostService: postService}
}

// @Summary List posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/posts [get]
func (c *PostController) ListPosts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	posts, total, err := c.PostService.ListPosts(page, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  posts,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary List my posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/posts/my [get]
func (c *PostController) ListMyPosts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	posts, total, err := c.PostService.ListMyPosts(user.UserID, page, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  posts,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Get post detail
// @Description Opening someone else's post counts a view
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param postId path int true "post ID"
// @Success 200 {object} util.Response
// @Router /api/posts/{postId} [get]
func (c *PostController) GetPost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	postID, err := strconv.Atoi(ctx.Param("postId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid post ID")
		return
	}

	post, err := c.PostService.GetPost(user.UserID, uint(postID))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, post)
}

// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body service.PostRequest true "post"
// @Success 201 {object} util.Response
// @Router /api/posts [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.PostService.CreatePost(user.UserID, req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, post)
}

// @Summary Update post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path int true "post ID"
// @Param post body service.PostRequest true "post"
// @Success 200 {object} util.Response
// @Router /api/posts/{postId} [put]
func (c *PostController) UpdatePost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	postID, err := strconv.Atoi(ctx.Param("postId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid post ID")
		return
	}

	var req service.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	post, err := c.PostService.UpdatePost(user.UserID, uint(postID), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, post)
}

// @Summary Delete post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param postId path int true "post ID"
// @Success 200 {object} util.Response
// @Router /api/posts/{postId} [delete]
func (c *PostController) DeletePost(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	postID, err := strconv.Atoi(ctx.Param("postId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid post ID")
		return
	}

	if err := c.PostService.DeletePost(user.UserID, uint(postID)); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "deleted"})
}

// @Summary Like post
// @Description Bumps the cached like counter and returns the new count. Repeat likes accumulate.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param postId path int true "post ID"
// @Success 200 {object} util.Response
// @Router /api/posts/{postId}/like [post]
func (c *PostController) LikePost(ctx *gin.Context) {
	postID, err := strconv.Atoi(ctx.Param("postId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid post ID")
		return
	}

	count, err := c.PostService.LikePost(ctx.Request.Context(), uint(postID))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"likes": count})
}

// @Summary Like post (pessimistic)
// @Description Durable like path using a row lock
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param postId path int true "post ID"
// @Success 200 {object} util.Response
// @Router /api/posts/{postId}/like/pessimistic [post]
func (c *PostController) LikePostPessimistic(ctx *gin.Context) {
	postID, err := strconv.Atoi(ctx.Param("postId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid post ID")
		return
	}

	count, err := c.PostService.LikePostPessimistic(uint(postID))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"likes": count})
}

// @Summary Like post (optimistic)
// @Description Durable like path using a bounded compare-and-set retry loop
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param postId path int true "post ID"
// @Success 200 {object} util.Response
// @Router /api/posts/{postId}/like/optimistic [post]
func (c *PostController) LikePostOptimistic(ctx *gin.Context) {
	postID, err := strconv.Atoi(ctx.Param("postId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid post ID")
		return
	}

	count, err := c.PostService.LikePostOptimistic(uint(postID))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"likes": count})
}
