package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/onlinebookstore/internal/application/book"
	"github.com/xiebiao/onlinebookstore/internal/interface/http/dto"
	apperrors "github.com/xiebiao/onlinebookstore/pkg/errors"
	"github.com/xiebiao/onlinebookstore/pkg/response"
	"github.com/xiebiao/onlinebookstore/pkg/validator"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooksUseCase   *appbook.ListBooksUseCase
	searchBooksUseCase *appbook.SearchBooksUseCase
	addBookUseCase     *appbook.AddBookUseCase
	updateBookUseCase  *appbook.UpdateBookUseCase
	deleteBookUseCase  *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	searchBooksUseCase *appbook.SearchBooksUseCase,
	addBookUseCase *appbook.AddBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:   listBooksUseCase,
		searchBooksUseCase: searchBooksUseCase,
		addBookUseCase:     addBookUseCase,
		updateBookUseCase:  updateBookUseCase,
		deleteBookUseCase:  deleteBookUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  返回全部图书，按ID升序，不分页
// @Tags         图书
// @Produce      json
// @Success      200 {array} dto.BookResponse
// @Failure      500 {object} response.ErrorBody "服务器错误"
// @Router       /api/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	list, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, list)
}

// SearchBooks 搜索图书
// @Summary      搜索图书
// @Description  书名或作者包含关键词（不区分大小写），空关键词返回全部
// @Tags         图书
// @Produce      json
// @Param        query query string true "关键词"
// @Success      200 {array} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "缺少query参数"
// @Failure      500 {object} response.ErrorBody "服务器错误"
// @Router       /api/books/search [get]
func (h *BookHandler) SearchBooks(c *gin.Context) {
	// 学习要点：GetQuery区分"参数缺失"和"参数为空字符串"
	query, ok := c.GetQuery("query")
	if !ok {
		response.Error(c, apperrors.Invalid(apperrors.ErrInvalidParams.Message, map[string]string{
			"query": "query parameter is required",
		}))
		return
	}

	list, err := h.searchBooksUseCase.Execute(c.Request.Context(), appbook.SearchBooksRequest{Query: query})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, list)
}

// AddBook 新增图书
// @Summary      新增图书
// @Tags         图书
// @Accept       json
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 "新增成功（空响应体）"
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      500 {object} response.ErrorBody "服务器错误"
// @Router       /api/books [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validator.Translate(err, req))
		return
	}

	// 2. 调用应用层用例
	_, err := h.addBookUseCase.Execute(c.Request.Context(), appbook.AddBookRequest{
		BookFields: toBookFields(req),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c)
}

// UpdateBook 修改图书
// @Summary      修改图书
// @Description  整体覆盖书名、作者、价格、库存，ID不变
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      500 {object} response.ErrorBody "服务器错误"
// @Router       /api/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	// 1. 路径参数
	var uri dto.BookIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, validator.Translate(err, uri))
		return
	}

	// 2. 请求体
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validator.Translate(err, req))
		return
	}

	// 3. 调用应用层用例
	result, err := h.updateBookUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		ID:         uri.ID,
		BookFields: toBookFields(req),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, result)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  图书不存在时默认静默成功（catalog.strict_delete开启时返回404）
// @Tags         图书
// @Param        id path int true "图书ID"
// @Success      200 "删除成功（空响应体）"
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      404 {object} response.ErrorBody "图书不存在"
// @Failure      500 {object} response.ErrorBody "服务器错误"
// @Router       /api/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	var uri dto.BookIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, validator.Translate(err, uri))
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c)
}

// toBookFields HTTP DTO → 应用层DTO
func toBookFields(req dto.BookRequest) appbook.BookFields {
	return appbook.BookFields{
		Title:  req.Title,
		Author: req.Author,
		Price:  req.Price,
		Stock:  req.Stock,
	}
}
